// Package latex delegates PDF compilation to an external LaTeX service.
package latex

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Compiler posts LaTeX source to the compile service and returns the PDF.
type Compiler struct {
	compileURL string
	httpClient *http.Client
}

func NewCompiler(compileURL string) *Compiler {
	return &Compiler{
		compileURL: compileURL,
		httpClient: &http.Client{Timeout: 90 * time.Second},
	}
}

// Compile returns the PDF bytes for the given LaTeX source.
func (c *Compiler) Compile(ctx context.Context, source string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.compileURL, bytes.NewReader([]byte(source)))
	if err != nil {
		return nil, fmt.Errorf("build compile request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-tex")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call latex service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read compile response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("latex service returned %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
