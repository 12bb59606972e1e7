package service

import "encoding/base64"

// MaxChunkSize is the largest base64 payload sent in one analysis request (4MB).
const MaxChunkSize = 4 * 1024 * 1024

// EncodeForUpload base64-encodes document and splits the encoding into
// consecutive chunks of at most MaxChunkSize characters.
func EncodeForUpload(document []byte) []string {
	return encodeChunks(document, MaxChunkSize)
}

func encodeChunks(document []byte, maxChunk int) []string {
	encoded := base64.StdEncoding.EncodeToString(document)
	if len(encoded) <= maxChunk {
		return []string{encoded}
	}

	chunks := make([]string, 0, (len(encoded)+maxChunk-1)/maxChunk)
	for start := 0; start < len(encoded); start += maxChunk {
		end := min(start+maxChunk, len(encoded))
		chunks = append(chunks, encoded[start:end])
	}
	return chunks
}
