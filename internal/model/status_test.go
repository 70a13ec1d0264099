package model

import "testing"

func TestStatusToggle(t *testing.T) {
	if got := StatusPending.Toggle(); got != StatusPaid {
		t.Fatalf("pending.Toggle() = %v, want paid", got)
	}
	if got := StatusPaid.Toggle(); got != StatusPending {
		t.Fatalf("paid.Toggle() = %v, want pending", got)
	}
}

func TestParseStatusRoundTrip(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusPaid} {
		if got := ParseStatus(s.String()); got != s {
			t.Fatalf("ParseStatus(%q) = %v, want %v", s.String(), got, s)
		}
	}
}

func TestParseStatusUnknownDefaultsToPending(t *testing.T) {
	if got := ParseStatus("archived"); got != StatusPending {
		t.Fatalf("ParseStatus(archived) = %v, want pending", got)
	}
}

func TestDefaultState(t *testing.T) {
	st := DefaultState()
	if st.Inputs.Currency != "USD" {
		t.Fatalf("Currency = %q, want USD", st.Inputs.Currency)
	}
	if st.Inputs.HoursPerDay != 6 || st.Inputs.DaysPerWeek != 5 {
		t.Fatalf("schedule = %g/%g, want 6/5", st.Inputs.HoursPerDay, st.Inputs.DaysPerWeek)
	}
	if st.HourlyRate != 0 || len(st.Ledger.Projects) != 0 {
		t.Fatalf("fresh state not empty: %+v", st)
	}
}
