package constants

import (
	"os"
	"strconv"
)

// Sequences shorter than this never produce patterns.
const MinSequenceLength = 4

const MinPatternLength = 2

const MaxPatternLength = 8

const DefaultTonic = 60

// Mining cost grows with the square of the sequence length.
const MaxSequenceLength = 4000

func GetPort() string {
	port := os.Getenv("MOTIFDEX_PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// GetTableName is empty when analyses should only live in memory.
func GetTableName() string {
	return os.Getenv("MOTIFDEX_TABLE")
}

func GetDynamoEndpoint() string {
	return os.Getenv("DYNAMODB_ENDPOINT")
}

func GetRegion() string {
	region := os.Getenv("AWS_REGION")
	if region != "" {
		return region
	}
	return "us-east-1"
}

func GetGeminiModel() string {
	model := os.Getenv("GEMINI_MODEL")
	if model != "" {
		return model
	}
	return "gemini-2.5-flash"
}

// GetGeminiAPIKey is empty when image extraction is not configured.
func GetGeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

func MustGetGeminiAPIKey() string {
	key := GetGeminiAPIKey()
	if key != "" {
		return key
	}
	panic("GEMINI_API_KEY environment variable is not set!")
}

func GetTonic() uint8 {
	v := os.Getenv("MOTIFDEX_TONIC")
	if v == "" {
		return DefaultTonic
	}
	tonic, err := strconv.ParseUint(v, 10, 8)
	if err != nil || tonic > 127 {
		panic("MOTIFDEX_TONIC must be a MIDI key between 0 and 127")
	}
	return uint8(tonic)
}
