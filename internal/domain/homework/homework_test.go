package homework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestHomework(t *testing.T) {
	hws := []Homework{
		{Name: "proj2", Status: StatusReviewing},
		{Name: "proj1", Status: StatusApproved},
	}
	empty := []Homework{}

	tests := []struct {
		name    string
		resp    *StatusesResponse
		want    *Homework
		wantErr error
	}{
		{
			name: "returns first element, newest is prepended",
			resp: &StatusesResponse{Homeworks: &hws, CurrentDate: 1700000100},
			want: &hws[0],
		},
		{
			name: "empty list is a quiet cycle, not an error",
			resp: &StatusesResponse{Homeworks: &empty, CurrentDate: 1700000100},
			want: nil,
		},
		{
			name:    "missing homeworks key violates the contract",
			resp:    &StatusesResponse{CurrentDate: 1700000100},
			wantErr: ErrInvalidResponse,
		},
		{
			name:    "nil response violates the contract",
			resp:    nil,
			wantErr: ErrInvalidResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LatestHomework(tt.resp)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatStatusMessage(t *testing.T) {
	tests := []struct {
		name    string
		hw      *Homework
		want    string
		wantErr error
	}{
		{
			name: "approved",
			hw:   &Homework{Name: "proj1", Status: StatusApproved},
			want: `Changed status of review for "proj1". Работа проверена: ревьюеру всё понравилось. Ура!`,
		},
		{
			name: "reviewing",
			hw:   &Homework{Name: "algo sprint", Status: StatusReviewing},
			want: `Changed status of review for "algo sprint". Работа взята на проверку ревьюером.`,
		},
		{
			name: "rejected",
			hw:   &Homework{Name: "proj1", Status: StatusRejected},
			want: `Changed status of review for "proj1". Работа проверена: у ревьюера есть замечания.`,
		},
		{
			name:    "unknown status",
			hw:      &Homework{Name: "proj1", Status: "banana"},
			wantErr: ErrUnknownStatus,
		},
		{
			name:    "missing name",
			hw:      &Homework{Status: StatusApproved},
			wantErr: ErrMissingName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatStatusMessage(tt.hw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatStatusMessageIsPure(t *testing.T) {
	hw := &Homework{Name: "proj1", Status: StatusApproved}

	first, err := FormatStatusMessage(hw)
	require.NoError(t, err)
	second, err := FormatStatusMessage(hw)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestVerdictsCoverAllStatuses(t *testing.T) {
	for _, s := range []Status{StatusApproved, StatusReviewing, StatusRejected} {
		if _, ok := Verdicts[s]; !ok {
			t.Fatalf("no verdict text for status %q", s)
		}
	}
	if errors.Is(ErrUnknownStatus, ErrMissingName) {
		t.Fatal("formatter sentinels must be distinct")
	}
}
