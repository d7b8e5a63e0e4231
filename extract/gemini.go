package extract

import (
	"context"
	"errors"
	"strings"

	"github.com/jsphweid/motifdex/model"
	genai "google.golang.org/genai"
)

var ErrEmptyResponse = errors.New("extraction service returned no text")

const Prompt = `Analyse this sheet music and extract its notes as JSON.

IMPORTANT: reply ONLY with a valid JSON object. No extra text, no markdown, no backticks.

NOTATION:
- Natural notes: 1=Do/C, 2=Re/D, 3=Mi/E, 4=Fa/F, 5=Sol/G, 6=La/A, 7=Si/B
- Sharps: append "#" to the number ("1#" is Do#, "4#" is Fa#)
- Flats: append "b" to the number ("7b" is Sib, "3b" is Mib)

The JSON must have exactly this shape:
{
  "notas": [strings, numbers 1-7 with their alterations, e.g. ["1", "1#", "2", "3b"]],
  "figuras": [strings: "redonda", "blanca", "negra", "corchea", "semicorchea", "fusa"],
  "compases": total number of measures,
  "clave": "detected clef (sol, fa, do)"
}

Read the notes left to right, measure by measure. Take the key signature into
account and mark every individual sharp and flat. An alteration only affects
that note in that measure. A note without a visible alteration is natural.

Valid example:
{"notas": ["5", "5", "5", "3", "5", "5", "5", "3"], "figuras": ["corchea", "corchea", "corchea", "corchea", "negra", "negra", "blanca", "blanca"], "compases": 2, "clave": "sol"}

If the score cannot be read clearly, reply with:
{"error": "the score could not be read clearly"}`

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini asks a Gemini vision model to read a score image.
type Gemini struct {
	models    contentGenerator
	model     string
	Image     []byte
	MediaType string
}

func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

func NewGemini(cli *genai.Client, model string, image []byte, mediaType string) *Gemini {
	return &Gemini{models: cli.Models, model: model, Image: image, MediaType: mediaType}
}

func (g *Gemini) Extract(ctx context.Context) (model.Extraction, error) {
	if !IsSupportedMediaType(g.MediaType) {
		return model.Extraction{}, ErrUnsupportedMedia
	}

	contents := []*genai.Content{{
		Role: "user",
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: g.MediaType, Data: g.Image}},
			{Text: Prompt},
		},
	}}
	resp, err := g.models.GenerateContent(ctx, g.model, contents,
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return model.Extraction{}, err
	}

	text := responseText(resp)
	if text == "" {
		return model.Extraction{}, ErrEmptyResponse
	}
	return ParseResponse(text)
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(sb.String())
}
