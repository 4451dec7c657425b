package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funcspan/funcspan/interval"
	"github.com/funcspan/funcspan/numeric"
	"github.com/funcspan/funcspan/symbolic"
)

func behaviorOf(t *testing.T, src string) Behavior {
	t.Helper()
	e, err := symbolic.Parse(src)
	require.NoError(t, err)
	cf, err := symbolic.Compile(e, "x")
	require.NoError(t, err)
	return analyzeBehavior(e, "x", interval.WholeLine(), numeric.Wrap(cf))
}

func TestAnalyzeBehavior_BoundedOscillation(t *testing.T) {
	b := behaviorOf(t, "sin(x)")
	assert.False(t, b.UnboundedAbove)
	assert.False(t, b.UnboundedBelow)
}

func TestAnalyzeBehavior_GrowingOscillation(t *testing.T) {
	b := behaviorOf(t, "x*sin(x)")
	assert.True(t, b.UnboundedAbove)
	assert.True(t, b.UnboundedBelow)
}

func TestAnalyzeBehavior_DecayingEnvelopeOneSide(t *testing.T) {
	// Explodes while oscillating toward -inf, decays toward +inf.
	b := behaviorOf(t, "exp(-x)*sin(x)")
	assert.True(t, b.UnboundedAbove)
	assert.True(t, b.UnboundedBelow)
}

func TestProbeToward_OscillationStreakFlagsBothSigns(t *testing.T) {
	// Toward -inf the envelope exp(-x) explodes while sin(x) keeps flipping
	// sign. The largest finite negative sample in the ring stays under the
	// direct divergence threshold, so UnboundedBelow can only come from the
	// streak-and-flip rule.
	e, err := symbolic.Parse("exp(-x)*sin(x)")
	require.NoError(t, err)
	cf, err := symbolic.Compile(e, "x")
	require.NoError(t, err)

	var b Behavior
	b.probeToward(numeric.Wrap(cf), -1)
	assert.True(t, b.UnboundedAbove)
	assert.True(t, b.UnboundedBelow)
}

func TestNumericOnlyBehavior_GrowingOscillation(t *testing.T) {
	// The symbolic layer is not consulted here; both flags must come from
	// the probe rings and the dense sweep alone.
	e, err := symbolic.Parse("exp(-x)*sin(x)")
	require.NoError(t, err)
	cf, err := symbolic.Compile(e, "x")
	require.NoError(t, err)

	b := numericOnlyBehavior(numeric.Wrap(cf), interval.WholeLine())
	assert.True(t, b.UnboundedAbove)
	assert.True(t, b.UnboundedBelow)
}

func TestAnalyzeBehavior_OneSidedGrowth(t *testing.T) {
	b := behaviorOf(t, "exp(x)")
	assert.True(t, b.UnboundedAbove)
	assert.False(t, b.UnboundedBelow)
}

func TestAnalyzeBehavior_PoleScan(t *testing.T) {
	e, err := symbolic.Parse("1/(x-3)")
	require.NoError(t, err)
	cf, err := symbolic.Compile(e, "x")
	require.NoError(t, err)
	dom, err := symbolic.ContinuousDomain(e, "x")
	require.NoError(t, err)

	b := analyzeBehavior(e, "x", dom, numeric.Wrap(cf))
	assert.True(t, b.UnboundedAbove)
	assert.True(t, b.UnboundedBelow)
}

func TestAnalyzeBehavior_QuietRational(t *testing.T) {
	b := behaviorOf(t, "(x**2-1)/(x**2+1)")
	assert.False(t, b.UnboundedAbove)
	assert.False(t, b.UnboundedBelow)
}
