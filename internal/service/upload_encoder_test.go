package service

import (
	"bytes"
	"encoding/base64"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeChunks(t *testing.T, chunks []string) []byte {
	t.Helper()
	decoded, err := base64.StdEncoding.DecodeString(strings.Join(chunks, ""))
	require.NoError(t, err)
	return decoded
}

func TestEncodeForUpload_SmallDocumentIsOneChunk(t *testing.T) {
	doc := bytes.Repeat([]byte{0x42}, 100*1024)

	chunks := EncodeForUpload(doc)
	require.Len(t, chunks, 1)
	assert.Equal(t, base64.StdEncoding.EncodeToString(doc), chunks[0])
}

func TestEncodeForUpload_EmptyDocument(t *testing.T) {
	chunks := EncodeForUpload(nil)
	assert.Equal(t, []string{""}, chunks)
}

func TestEncodeForUpload_LargeDocuments(t *testing.T) {
	tests := []struct {
		name       string
		size       int
		wantChunks int
	}{
		{"exactly at limit", MaxChunkSize / 4 * 3, 1},
		{"one byte over limit", MaxChunkSize/4*3 + 1, 2},
		{"8MiB", 8 << 20, 3},
		{"10MiB", 10 << 20, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := make([]byte, tt.size)
			rand.New(rand.NewSource(int64(tt.size))).Read(doc)

			chunks := EncodeForUpload(doc)
			encodedLen := base64.StdEncoding.EncodedLen(tt.size)

			assert.Len(t, chunks, tt.wantChunks)
			assert.Equal(t, (encodedLen+MaxChunkSize-1)/MaxChunkSize, len(chunks))
			for i, chunk := range chunks {
				assert.NotEmpty(t, chunk, "chunk %d", i)
				assert.LessOrEqual(t, len(chunk), MaxChunkSize, "chunk %d", i)
				if i < len(chunks)-1 {
					assert.Len(t, chunk, MaxChunkSize, "chunk %d", i)
				}
			}
			assert.True(t, bytes.Equal(doc, decodeChunks(t, chunks)))
		})
	}
}

func TestEncodeChunks_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		doc := make([]byte, rng.Intn(300))
		rng.Read(doc)
		maxChunk := 1 + rng.Intn(40)

		chunks := encodeChunks(doc, maxChunk)
		encodedLen := base64.StdEncoding.EncodedLen(len(doc))

		if encodedLen == 0 {
			require.Equal(t, []string{""}, chunks)
			continue
		}
		require.Equal(t, (encodedLen+maxChunk-1)/maxChunk, len(chunks))
		for _, chunk := range chunks {
			require.NotEmpty(t, chunk)
			require.LessOrEqual(t, len(chunk), maxChunk)
		}
		require.True(t, bytes.Equal(doc, decodeChunks(t, chunks)))
	}
}
