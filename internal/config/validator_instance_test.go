package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	gridcrafterrors "github.com/alexisbeaulieu97/gridcraft/pkg/errors"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(s *Settings)
		field  string
	}{
		{name: "defaults are valid"},
		{
			name:   "disabled level is accepted",
			mutate: func(s *Settings) { s.LogLevel = "disabled" },
		},
		{
			name:   "log file must name a file",
			mutate: func(s *Settings) { s.LogFile = "/var/log/" },
			field:  "log_file",
		},
		{
			name:   "item limit is bounded",
			mutate: func(s *Settings) { s.Limits.MaxItems = 500 },
			field:  "limits.max_items",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := Defaults()
			if tc.mutate != nil {
				tc.mutate(&s)
			}

			err := Validate(s)
			if tc.field == "" {
				require.NoError(t, err)
				return
			}

			var valErr *gridcrafterrors.ValidationError
			require.ErrorAs(t, err, &valErr)
			require.Equal(t, tc.field, valErr.Field)
		})
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	t.Parallel()

	off := false
	s := Settings{AltScreen: &off, Limits: Limits{MaxColumns: 6}}.ApplyDefaults()

	require.False(t, s.UseAltScreen())
	require.True(t, s.UseUnicode())
	require.Equal(t, "info", s.LogLevel)
	require.Equal(t, 6, s.Limits.MaxColumns)
	require.Equal(t, 40, s.Limits.MaxItems)
}
