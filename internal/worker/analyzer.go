package worker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/hajimehoshi/go-mp3"
)

// PreviewAnalyzer downloads MP3 previews and measures their RMS loudness.
type PreviewAnalyzer struct {
	client *http.Client
}

func NewPreviewAnalyzer(client *http.Client) *PreviewAnalyzer {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &PreviewAnalyzer{client: client}
}

// Analyze returns the RMS of the decoded 16-bit samples scaled to [0,1].
func (a *PreviewAnalyzer) Analyze(ctx context.Context, previewURL string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, previewURL, nil)
	if err != nil {
		return 0, fmt.Errorf("preview request failed: %w", err)
	}

	// #nosec G107 -- preview URLs come from catalog responses
	resp, err := a.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("preview fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("preview fetch status %d", resp.StatusCode)
	}

	decoder, err := mp3.NewDecoder(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("preview decode failed: %w", err)
	}

	return rmsEnergy(decoder)
}

// rmsEnergy reads little-endian 16-bit PCM until EOF.
func rmsEnergy(r io.Reader) (float64, error) {
	buf := make([]byte, 4096)
	var sumSquares, count float64
	var carry []byte

	for {
		n, err := r.Read(buf)
		chunk := append(carry, buf[:n]...)
		i := 0
		for ; i+1 < len(chunk); i += 2 {
			sample := float64(int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8))
			sumSquares += sample * sample
			count++
		}
		carry = append(carry[:0], chunk[i:]...)

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, fmt.Errorf("preview read failed: %w", err)
		}
	}

	if count == 0 {
		return 0, fmt.Errorf("preview contains no samples")
	}

	energy := math.Sqrt(sumSquares/count) / 32768.0
	return math.Max(0, math.Min(1, energy)), nil
}
