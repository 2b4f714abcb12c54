package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/StoreScope/storescope-go/internal/domain/events"
)

func TestWriteCSV(t *testing.T) {
	svc := NewExportService(quietLogger(t))

	view := []events.Event{
		testEvent(0, 10, "2024-01-05", events.EventView, 20.5),
		testEvent(1, 11, "2024-02-10", events.EventPurchase, 100),
	}

	var buf bytes.Buffer
	if err := svc.WriteCSV(&buf, view); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3 (header plus two rows)", len(lines))
	}
	if lines[0] != "event_id,user_id,date,event,price,month" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "0,10,2024-01-05,view,20.50,2024-01" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "1,11,2024-02-10,purchase,100.00,2024-02" {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestWriteCSVEmptyView(t *testing.T) {
	svc := NewExportService(quietLogger(t))

	var buf bytes.Buffer
	if err := svc.WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	got := strings.TrimRight(buf.String(), "\n")
	if got != "event_id,user_id,date,event,price,month" {
		t.Errorf("empty view export = %q, want header only", got)
	}
}
