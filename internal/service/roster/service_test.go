package roster

import (
	"context"
	"errors"
	"testing"

	"github.com/crosslog/dispatch-backend-go/internal/domain/roster"
	"github.com/crosslog/dispatch-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignRejectsDateOutsideMonth(t *testing.T) {
	s := &RosterServiceImpl{}

	_, err := s.Assign(context.Background(), 2025, 6, roster.AssignRequest{
		DriverID:    "driver-1",
		Date:        "2025-07-01",
		ProjectName: "Harbor Run",
	})

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 1)
	assert.Equal(t, "date", verrs[0].Field)
}

func TestAssignRejectsMalformedDate(t *testing.T) {
	s := &RosterServiceImpl{}

	_, err := s.Assign(context.Background(), 2025, 6, roster.AssignRequest{
		DriverID:    "driver-1",
		Date:        "06/10/2025",
		ProjectName: "Harbor Run",
	})

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "date", verrs[0].Field)
}
