package surfreport

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jacob-Northcote/WaveView/pkg/metrics"
)

func TestReportMarshalOmitsMissingUsage(t *testing.T) {
	payload, err := json.Marshal(Report{Spot: testSpot, Analysis: "flat"})
	require.NoError(t, err)
	require.NotContains(t, string(payload), `"usage"`)

	payload, err = json.Marshal(Report{
		Spot:  testSpot,
		Usage: &metrics.TokenUsage{PromptTokens: 10, CompletionTokens: 20, TotalTokens: 30},
	})
	require.NoError(t, err)
	require.Contains(t, string(payload), `"usage"`)
}
