// File: antgrid/types_test.go
package antgrid

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antclust/core"
)

func TestOptions_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Options)
		want   error
	}{
		{"defaults pass", func(o *Options) {}, nil},
		{"alpha zero", func(o *Options) { o.Alpha = 0 }, ErrNonPositiveAlpha},
		{"kp zero", func(o *Options) { o.Kp = 0 }, ErrNonPositiveKp},
		{"kd negative", func(o *Options) { o.Kd = -0.5 }, ErrNonPositiveKd},
		{"unknown drop fn", func(o *Options) { o.Drop = DropFn(7) }, ErrBadDropFn},
		{"width below minimum", func(o *Options) { o.Width = 2 }, ErrGridTooSmall},
		{"height below minimum", func(o *Options) { o.Height = 0 }, ErrGridTooSmall},
		{"no ants", func(o *Options) { o.Ants = 0 }, ErrNoAnts},
		{"zero calls", func(o *Options) { o.CallsPerCycle = 0 }, ErrBadBudget},
		{"zero cycles", func(o *Options) { o.MaxCycles = 0 }, ErrBadBudget},
		{"negative view range", func(o *Options) { o.ViewRange = -1 }, ErrBadViewRange},
		{"zero max speed", func(o *Options) { o.MaxSpeed = 0 }, ErrBadSpeedLimit},
		{"more speed classes than ants", func(o *Options) { o.Ants = 2; o.MaxSpeed = 3 }, ErrBadSpeedLimit},
		{"negative drop range", func(o *Options) { o.DropRange = -1 }, ErrBadDropRange},
		{"negative memory", func(o *Options) { o.MemorySize = -1 }, ErrBadMemorySize},
		{"destructive without budget", func(o *Options) { o.DestructiveCycles = 2; o.DestructivePickups = 0 }, ErrBadDestructive},
		{"destructive off ignores budget", func(o *Options) { o.DestructivePickups = 0 }, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultOptions()
			tc.mutate(&opts)
			err := opts.Validate()
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, core.ErrConfiguration,
				"every validation fault must wrap the shared taxonomy")
		})
	}
}

func TestNew_RejectsBadOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Kp = 0
	_, err := New(opts)
	require.ErrorIs(t, err, ErrNonPositiveKp)
}
