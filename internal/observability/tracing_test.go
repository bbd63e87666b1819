package observability

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupTracing_Disabled(t *testing.T) {
	shutdown, err := SetupTracing(context.Background(), TracingConfig{}, ResourceConfig{ServiceName: "go-comments"})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetupTracing_RequiresEndpoint(t *testing.T) {
	_, err := SetupTracing(context.Background(), TracingConfig{Enabled: true}, ResourceConfig{})
	require.Error(t, err)
}

func TestSampleRate(t *testing.T) {
	require.Equal(t, 0.25, SampleRate(0.25))
	require.Equal(t, 1.0, SampleRate(1))
	require.Equal(t, 1.0, SampleRate(0))
	require.Equal(t, 1.0, SampleRate(-3))
	require.Equal(t, 1.0, SampleRate(7))
	require.Equal(t, 1.0, SampleRate(math.NaN()))
}
