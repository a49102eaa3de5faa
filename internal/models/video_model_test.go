package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransitionAllowed(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{VideoStatusQueued, VideoStatusProcessing, true},
		{VideoStatusQueued, VideoStatusFailed, true},
		{VideoStatusQueued, VideoStatusProcessed, false},
		{VideoStatusProcessing, VideoStatusProcessed, true},
		{VideoStatusProcessing, VideoStatusFailed, true},
		{VideoStatusProcessing, VideoStatusQueued, false},
		{VideoStatusProcessed, VideoStatusFailed, false},
		{VideoStatusProcessed, VideoStatusProcessing, false},
		{VideoStatusFailed, VideoStatusProcessing, false},
		{VideoStatusFailed, VideoStatusProcessed, false},
		{"bogus", VideoStatusProcessing, false},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, TransitionAllowed(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}
