package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/danialhaz/gigmate/internal/types"
)

func ptr(v float64) *float64 { return &v }

func testPrinter(out *bytes.Buffer) *Printer {
	return NewPrinterWithWriters(out, out, false)
}

func TestRenderCandidates_TableIncludesTierAndRate(t *testing.T) {
	var buf bytes.Buffer
	page := &types.CandidatePage{
		Total: 1, Page: 1, PageSize: 20, TotalPages: 1,
		Results: []types.CandidateResult{{
			ID:            uuid.New(),
			Name:          "Aisyah Rahman",
			MatchScore:    92,
			HourlyRate:    ptr(28),
			Currency:      "MYR",
			DistanceKM:    ptr(2.4),
			Availability:  types.AvailabilityAvailable,
			MatchedSkills: []string{"Event Setup", "First Aid"},
		}},
	}

	RenderCandidates(&buf, testPrinter(&buf), page)

	out := buf.String()
	assert.Contains(t, out, "Aisyah Rahman")
	assert.Contains(t, out, "92%")
	assert.Contains(t, out, "Excellent")
	assert.Contains(t, out, "RM28.00/hr")
	assert.Contains(t, out, "2.4km away")
	assert.Contains(t, out, "Event Setup, First Aid")
	assert.Contains(t, out, "Page 1 of 1 (1 candidates total)")
}

func TestRenderCandidates_EmptyPage(t *testing.T) {
	var buf bytes.Buffer
	RenderCandidates(&buf, testPrinter(&buf), &types.CandidatePage{Page: 1})
	assert.Contains(t, buf.String(), "No candidates matched your search.")
}

func TestRenderJobs_SalaryRangeFormatting(t *testing.T) {
	var buf bytes.Buffer
	page := &types.JobPage{
		Total: 1, Page: 1, TotalPages: 1,
		Results: []types.JobResult{{
			Title:       "Warehouse Picker",
			CompanyName: "Acme Logistics",
			Type:        types.JobTypeGig,
			SalaryMin:   ptr(15),
			SalaryMax:   ptr(25),
			Currency:    "MYR",
			Period:      types.PeriodHourly,
		}},
	}

	RenderJobs(&buf, testPrinter(&buf), page)

	out := buf.String()
	assert.Contains(t, out, "Warehouse Picker")
	assert.Contains(t, out, "RM15.00 - RM25.00/hr")
}

func TestRenderRecommendations_Empty(t *testing.T) {
	var buf bytes.Buffer
	RenderRecommendations(&buf, testPrinter(&buf), nil)
	assert.Contains(t, buf.String(), "No recommendations right now.")
}

func TestRenderWallet_DebitsShowNegativePoints(t *testing.T) {
	var buf bytes.Buffer
	balance := &types.WalletBalance{Points: 120, CashAmount: 55.5, Currency: "MYR"}
	history := []types.PointTransaction{
		{Kind: types.TransactionCredit, Points: 50, Description: "Job completed", CreatedAt: time.Now()},
		{Kind: types.TransactionDebit, Points: 30, Description: "No-show penalty", CreatedAt: time.Now()},
	}

	RenderWallet(&buf, testPrinter(&buf), balance, history)

	out := buf.String()
	assert.Contains(t, out, "Points: 120")
	assert.Contains(t, out, "RM55.50")
	assert.Contains(t, out, "+50")
	assert.Contains(t, out, "-30")
}

func TestRenderPenalties_CleanAccount(t *testing.T) {
	var buf bytes.Buffer
	RenderPenalties(&buf, testPrinter(&buf), nil)
	assert.Contains(t, buf.String(), "No penalties on your account.")
}

func TestRenderMessage_MarksOwnMessages(t *testing.T) {
	var buf bytes.Buffer
	p := testPrinter(&buf)

	RenderMessage(p, types.Message{SenderName: "Daniel", Mine: true, Body: "on my way", SentAt: time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)})
	RenderMessage(p, types.Message{SenderName: "Daniel", Mine: false, Body: "see you", SentAt: time.Date(2026, 8, 1, 9, 31, 0, 0, time.UTC)})

	out := buf.String()
	assert.Contains(t, out, "09:30 you: on my way")
	assert.Contains(t, out, "09:31 Daniel: see you")
}

func TestRenderProfile(t *testing.T) {
	var buf bytes.Buffer
	headline := "Event crew lead"
	profile := &types.Profile{
		Name:         "Aisyah Rahman",
		Email:        "aisyah@example.my",
		Headline:     &headline,
		Availability: types.AvailabilityAvailable,
		HourlyRate:   ptr(28),
		Currency:     "MYR",
		Skills:       []types.CandidateSkill{{Name: "Event Setup"}, {Name: "First Aid"}},
	}

	RenderProfile(testPrinter(&buf), profile)

	out := buf.String()
	assert.Contains(t, out, "Aisyah Rahman")
	assert.Contains(t, out, "Event crew lead")
	assert.Contains(t, out, "RM28.00/hr")
	assert.Contains(t, out, "Event Setup, First Aid")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "0123456…", truncate("0123456789", 8))
}
