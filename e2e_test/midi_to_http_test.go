//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/jsphweid/motifdex/analysis"
	"github.com/jsphweid/motifdex/cmd"
	"github.com/jsphweid/motifdex/db"
	"github.com/jsphweid/motifdex/extract"
	"github.com/jsphweid/motifdex/midi"
	"github.com/jsphweid/motifdex/model"
	"github.com/jsphweid/motifdex/note"
	"github.com/jsphweid/motifdex/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sol sol sol mi, twice
var phrase = []int{67, 67, 67, 64, 67, 67, 67, 64}

func TestMidiFileToReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrase.mid")
	require.NoError(t, midi.WriteMidiFile(path, phrase, midi.DefaultWriteOptions()))

	a, err := analysis.Run(context.Background(), extract.Midi{Path: path, Tonic: 60}, "phrase.mid")
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal([]string{"5", "5", "5", "3", "5", "5", "5", "3"}, note.Tokens(a.Extraction.Notes))

	var found bool
	for _, m := range a.Matches {
		if m.Length == 4 && note.Tokens(m.Pattern)[3] == "3" {
			found = true
			assert.Equal([]int{0, 4}, m.Occurrences)
		}
	}
	assert.True(found, "expected the full phrase to repeat")

	var buf bytes.Buffer
	require.NoError(t, report.Text(&buf, a, report.Options{}))
	assert.Contains(buf.String(), "5-5-5-3  (Sol Sol Sol Mi)  count=2 length=4 at=1,5")
}

func TestStoredAnalysisOverHTTP(t *testing.T) {
	store := db.NewMemoryStore()
	h := cmd.NewRouter(&cmd.Server{Store: store})

	body, _ := json.Marshal(model.AnalyzeRequestBody{Notes: []string{"5", "5", "5", "3", "5", "5", "5", "3"}})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader(body)))
	resp := w.Result()
	require.Equal(t, 200, resp.StatusCode)

	respBody, _ := io.ReadAll(resp.Body)
	var a model.Analysis
	require.NoError(t, json.Unmarshal(respBody, &a))

	stored, err := store.Get(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.Matches, stored.Matches)
	assert.Len(t, stored.Annotations, 8)
}
