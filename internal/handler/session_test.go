package handler

import (
	"testing"
	"time"

	"github.com/abbaschallawala95/studio/internal/models"
)

func TestValidateSessionReq(t *testing.T) {
	tests := []struct {
		name    string
		req     sessionReq
		wantOK  bool
		wantMsg string
	}{
		{
			name:   "valid same-day session",
			req:    sessionReq{Date: "2024-05-01", StartTime: "08:00", EndTime: "10:30", StartPercentage: 20, EndPercentage: 80},
			wantOK: true,
		},
		{
			name:   "valid rollover session",
			req:    sessionReq{Date: "2024-05-01", StartTime: "23:00", EndTime: "02:00", StartPercentage: 10, EndPercentage: 90},
			wantOK: true,
		},
		{
			name:    "equal start and end times",
			req:     sessionReq{Date: "2024-05-01", StartTime: "09:15", EndTime: "09:15", StartPercentage: 20, EndPercentage: 80},
			wantOK:  false,
			wantMsg: "end time must differ from start time",
		},
		{
			name:    "equal times across digit widths",
			req:     sessionReq{Date: "2024-05-01", StartTime: "9:15", EndTime: "09:15", StartPercentage: 20, EndPercentage: 80},
			wantOK:  false,
			wantMsg: "end time must differ from start time",
		},
		{
			name:    "bad date",
			req:     sessionReq{Date: "05/01/2024", StartTime: "08:00", EndTime: "10:30", StartPercentage: 20, EndPercentage: 80},
			wantOK:  false,
			wantMsg: "date must be YYYY-MM-DD",
		},
		{
			name:    "bad start time",
			req:     sessionReq{Date: "2024-05-01", StartTime: "8am", EndTime: "10:30", StartPercentage: 20, EndPercentage: 80},
			wantOK:  false,
			wantMsg: "start time must be HH:MM",
		},
		{
			name:   "end percentage not above start",
			req:    sessionReq{Date: "2024-05-01", StartTime: "08:00", EndTime: "10:30", StartPercentage: 80, EndPercentage: 80},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, msg, ok := validateSessionReq(&tt.req)
			if ok != tt.wantOK {
				t.Fatalf("validateSessionReq() ok = %v, want %v (msg %q)", ok, tt.wantOK, msg)
			}
			if tt.wantMsg != "" && msg != tt.wantMsg {
				t.Errorf("validateSessionReq() msg = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestSortByDurationDesc(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	sessions := []models.ChargingSession{
		{ID: "short", Date: day, StartTime: "08:00", EndTime: "08:45"},
		{ID: "corrupt", Date: day, StartTime: "bad", EndTime: "10:00"},
		{ID: "rollover", Date: day, StartTime: "23:00", EndTime: "02:30"}, // 3h 30m
		{ID: "medium", Date: day, StartTime: "10:00", EndTime: "12:00"},
	}

	sortByDurationDesc(sessions)

	want := []string{"rollover", "medium", "short", "corrupt"}
	for i, id := range want {
		if sessions[i].ID != id {
			t.Fatalf("position %d = %q, want %q", i, sessions[i].ID, id)
		}
	}
}
