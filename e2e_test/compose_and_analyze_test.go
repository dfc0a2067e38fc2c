//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/jsphweid/tonerow/api"
	"github.com/jsphweid/tonerow/chord"
	"github.com/jsphweid/tonerow/midi"
	"github.com/jsphweid/tonerow/model"
	"github.com/jsphweid/tonerow/piece"
	"github.com/stretchr/testify/assert"
)

func TestComposeWriteReadAnalyzeE2E(t *testing.T) {
	assert := assert.New(t)

	p, err := piece.Load("../piece/testdata/canon.yml")
	assert.NoError(err)
	composed, err := p.Compose()
	assert.NoError(err)

	path := filepath.Join(t.TempDir(), "canon.mid")
	assert.NoError(midi.WriteFile(path, composed))

	parsed, err := midi.ReadMidiFile(path)
	assert.NoError(err)
	back, err := midi.ToSeq(parsed)
	assert.NoError(err)

	// 24 + 12 notes plus 4 trichords flattened, programs are not read back
	assert.Equal(24+12+4*3, back.Len())

	analyses := chord.Analyze(chord.FromSeq(back))
	assert.NotEmpty(analyses)
	for _, a := range analyses {
		assert.NotEmpty(a.Prime)
		assert.Equal(0, a.Prime[0])
	}
}

func TestPcsetOverHTTPE2E(t *testing.T) {
	srv := httptest.NewServer(api.NewHandler())
	defer srv.Close()

	data, _ := json.Marshal(model.PcsetRequestBody{Pcs: []int{0, 4, 7}})
	resp, err := http.Post(srv.URL+"/pcset", "application/json", bytes.NewReader(data))
	assert := assert.New(t)
	assert.NoError(err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var res model.SetClass
	assert.NoError(json.Unmarshal(body, &res))
	assert.Equal("0-3-7", res.Key)
	assert.Equal([6]int{0, 0, 1, 1, 1, 0}, res.Vector)
}
