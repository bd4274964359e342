package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplicationStatusValid(t *testing.T) {
	for _, status := range []ApplicationStatus{
		ApplicationStatusPending, ApplicationStatusShortlisted,
		ApplicationStatusRejected, ApplicationStatusAccepted,
	} {
		require.True(t, status.Valid(), string(status))
	}

	for _, status := range []ApplicationStatus{"", "on-hold", "Pending", "ACCEPTED"} {
		require.False(t, status.Valid(), string(status))
	}
}
