package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery-service/internal/adapters/primary/http/dto"
)

func ptr[T any](v T) *T { return &v }

func sampleExhibits() []dto.Exhibit {
	return []dto.Exhibit{
		{ID: 0, Title: "Numba for CUDA", Description: ptr("Nvidia contributed CUDA tutorial for Numba"), LocalPath: "exhibits/nvidia-cuda-tutorial"},
		{ID: 1, Title: "PyTorch Tutorial", Description: ptr("PyTorch Tutorial for Deep Learning Researchers"), LocalPath: "exhibits/pytorch-tutorial", IsCloned: true, UpdatesAvailable: ptr(true)},
		{ID: 2, Title: "Jupyter Widgets Tutorial", LocalPath: "exhibits/tutorial", IsCloned: true, UpdatesAvailable: ptr(false)},
	}
}

func ids(exhibits []dto.Exhibit) []int {
	out := make([]int, 0, len(exhibits))
	for _, e := range exhibits {
		out = append(out, e.ID)
	}
	return out
}

func TestFilterExhibits(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{"empty query matches all", "", []int{0, 1, 2}},
		{"title match", "numba", []int{0}},
		{"case insensitive", "NUMBA", []int{0}},
		{"fuzzy title match", "torch", []int{1}},
		{"description match", "researchers", []int{1}},
		{"shared word", "tutorial", []int{0, 1, 2}},
		{"no match", "quantum", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(filterExhibits(sampleExhibits(), tt.query)))
		})
	}
}

func TestStatus(t *testing.T) {
	exhibits := sampleExhibits()
	assert.Equal(t, "not cloned", status(exhibits[0]))
	assert.Equal(t, "updates available", status(exhibits[1]))
	assert.Equal(t, "cloned", status(exhibits[2]))
}

func TestListCommand_JSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/custom/exhibits" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(dto.ExhibitsReply{Exhibits: sampleExhibits()})
	}))
	defer srv.Close()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--server", srv.URL, "--namespace", "custom", "list", "numba", "--json"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, rootCmd.Execute())

	var got []dto.Exhibit
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Numba for CUDA", got[0].Title)
}

func TestPullCommand_RejectsInvalidID(t *testing.T) {
	rootCmd.SetArgs([]string{"--server", "http://127.0.0.1:1", "pull", "abc"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exhibit id")
}
