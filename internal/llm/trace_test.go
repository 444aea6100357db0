package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraced(t *testing.T) {
	tests := []struct {
		name    string
		sendErr error
		wantErr string
	}{
		{name: "success"},
		{name: "request failure is wrapped", sendErr: errors.New("quota exhausted"), wantErr: "gemini request failed: quota exhausted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := traced(context.Background(), providerNameGemini, DefaultGeminiModel, func(tx *sentry.Span) (*GenerationResponse, error) {
				out, err := roundTrip(tx, providerNameGemini, func(context.Context) (string, error) {
					return `{"name":"Loom"}`, tt.sendErr
				})
				if err != nil {
					return nil, err
				}
				return &GenerationResponse{RawOutput: out, Model: DefaultGeminiModel}, nil
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr)
				assert.ErrorIs(t, err, tt.sendErr)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, `{"name":"Loom"}`, resp.RawOutput)
		})
	}
}
