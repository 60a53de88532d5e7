package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/danialhaz/gigmate/internal/format"
	"github.com/danialhaz/gigmate/internal/types"
)

// RenderCandidates writes a candidate result table followed by a page summary.
func RenderCandidates(w io.Writer, p *Printer, page *types.CandidatePage) {
	if len(page.Results) == 0 {
		p.Info("No candidates matched your search.")
		return
	}

	table := NewTableWithWriter(w, []string{"Name", "Match", "Tier", "Rate", "Distance", "Availability", "Skills"})
	for _, c := range page.Results {
		table.AddRow([]string{
			c.Name,
			fmt.Sprintf("%.0f%%", c.MatchScore),
			p.TierBadge(format.MatchTier(c.MatchScore)),
			rateColumn(c.HourlyRate, c.Currency),
			format.Distance(c.DistanceKM),
			string(c.Availability),
			strings.Join(c.MatchedSkills, ", "),
		})
	}
	table.Render()
	p.Print("")
	p.Info("Page %d of %d (%d candidates total)", page.Page, page.TotalPages, page.Total)
}

// RenderCandidateDetail writes the full record behind one search result.
func RenderCandidateDetail(p *Printer, c *types.CandidateDetail) {
	p.Header(c.Name)
	if c.Headline != "" {
		p.Print("%s", c.Headline)
	}
	p.Print("Match:        %.0f%% (%s)", c.MatchScore, p.TierBadge(format.MatchTier(c.MatchScore)))
	p.Print("Breakdown:    skills %.0f | location %.0f | rate %.0f",
		c.Breakdown.Skills, c.Breakdown.Location, c.Breakdown.Rate)
	if c.Location != "" {
		p.Print("Location:     %s %s", c.Location, p.Dim(format.Distance(c.DistanceKM)))
	}
	p.Print("Rate:         %s", rateColumn(c.HourlyRate, c.Currency))
	p.Print("Availability: %s", c.Availability)
	if c.Rating != nil {
		p.Print("Rating:       %.1f/5.0", *c.Rating)
	}
	if c.YearsExperience != nil {
		p.Print("Experience:   %d years, %d jobs completed", *c.YearsExperience, c.CompletedJobs)
	}
	if len(c.MatchedSkills) > 0 {
		p.Print("Matched:      %s", strings.Join(c.MatchedSkills, ", "))
	}
	if len(c.MissingSkills) > 0 {
		p.Print("Missing:      %s", p.Dim(strings.Join(c.MissingSkills, ", ")))
	}
	if c.Bio != "" {
		p.Print("\n%s", c.Bio)
	}
}

// RenderJobs writes a job result table followed by a page summary.
func RenderJobs(w io.Writer, p *Printer, page *types.JobPage) {
	if len(page.Results) == 0 {
		p.Info("No jobs matched your search.")
		return
	}

	table := NewTableWithWriter(w, []string{"Title", "Company", "Type", "Salary", "Location", "Distance"})
	for _, j := range page.Results {
		table.AddRow([]string{
			j.Title,
			j.CompanyName,
			string(j.Type),
			format.SalaryRange(j.SalaryMin, j.SalaryMax, j.Currency, j.Period),
			j.Location,
			format.Distance(j.DistanceKM),
		})
	}
	table.Render()
	p.Print("")
	p.Info("Page %d of %d (%d jobs total)", page.Page, page.TotalPages, page.Total)
}

// RenderRecommendations writes scored job suggestions with their match reasons.
func RenderRecommendations(w io.Writer, p *Printer, recs []types.JobRecommendation) {
	if len(recs) == 0 {
		p.Info("No recommendations right now. Add more skills to your profile to get better matches.")
		return
	}

	table := NewTableWithWriter(w, []string{"Title", "Company", "Match", "Tier", "Salary", "Reason"})
	for _, r := range recs {
		table.AddRow([]string{
			r.Job.Title,
			r.Job.CompanyName,
			fmt.Sprintf("%.0f%%", r.MatchScore),
			p.TierBadge(format.MatchTier(r.MatchScore)),
			format.SalaryRange(r.Job.SalaryMin, r.Job.SalaryMax, r.Job.Currency, r.Job.Period),
			r.Reason,
		})
	}
	table.Render()
}

// RenderApplications writes the user's submitted applications.
func RenderApplications(w io.Writer, p *Printer, records []types.ApplicationRecord) {
	if len(records) == 0 {
		p.Info("You have not applied to any jobs yet.")
		return
	}

	table := NewTableWithWriter(w, []string{"Job", "Status", "Applied"})
	for _, a := range records {
		table.AddRow([]string{
			a.JobTitle,
			string(a.Status),
			a.AppliedAt.Format("2006-01-02 15:04"),
		})
	}
	table.Render()
}

// RenderWallet writes the wallet balance and recent point history.
func RenderWallet(w io.Writer, p *Printer, balance *types.WalletBalance, history []types.PointTransaction) {
	p.Header("Wallet")
	p.Print("Points: %s", p.Bold(fmt.Sprintf("%d", balance.Points)))
	p.Print("Cash:   %s", format.Currency(balance.CashAmount, balance.Currency))

	if len(history) == 0 {
		return
	}
	p.Header("Recent activity")
	table := NewTableWithWriter(w, []string{"Date", "Kind", "Points", "Description"})
	for _, tx := range history {
		points := fmt.Sprintf("+%d", tx.Points)
		if tx.Kind == types.TransactionDebit {
			points = fmt.Sprintf("-%d", tx.Points)
		}
		table.AddRow([]string{
			tx.CreatedAt.Format("2006-01-02"),
			string(tx.Kind),
			points,
			tx.Description,
		})
	}
	table.Render()
}

// RenderPenalties writes the account's penalty history.
func RenderPenalties(w io.Writer, p *Printer, penalties []types.Penalty) {
	if len(penalties) == 0 {
		p.Success("No penalties on your account.")
		return
	}

	table := NewTableWithWriter(w, []string{"Issued", "Reason", "Points", "Status"})
	for _, pen := range penalties {
		table.AddRow([]string{
			pen.IssuedAt.Format("2006-01-02"),
			pen.Reason,
			fmt.Sprintf("-%d", pen.Points),
			string(pen.Status),
		})
	}
	table.Render()
}

// RenderConversations writes the chat inbox.
func RenderConversations(w io.Writer, p *Printer, conversations []types.Conversation) {
	if len(conversations) == 0 {
		p.Info("No conversations yet.")
		return
	}

	table := NewTableWithWriter(w, []string{"ID", "Peer", "Unread", "Last message", "Updated"})
	for _, c := range conversations {
		unread := ""
		if c.UnreadCount > 0 {
			unread = p.Bold(fmt.Sprintf("%d", c.UnreadCount))
		}
		table.AddRow([]string{
			c.ID.String(),
			c.PeerName,
			unread,
			truncate(c.LastMessage, 48),
			c.UpdatedAt.Format("2006-01-02 15:04"),
		})
	}
	table.Render()
}

// RenderMessage writes one chat message in transcript form.
func RenderMessage(p *Printer, m types.Message) {
	sender := m.SenderName
	if m.Mine {
		sender = p.Bold("you")
	}
	p.Print("%s %s: %s", p.Dim(m.SentAt.Format("15:04")), sender, m.Body)
}

// RenderProfile writes the signed-in user's profile.
func RenderProfile(p *Printer, profile *types.Profile) {
	p.Header(profile.Name)
	if profile.Headline != nil {
		p.Print("%s", *profile.Headline)
	}
	p.Print("Email:        %s", profile.Email)
	if profile.Phone != nil {
		p.Print("Phone:        %s", *profile.Phone)
	}
	if profile.Location != nil {
		p.Print("Location:     %s", *profile.Location)
	}
	p.Print("Availability: %s", profile.Availability)
	p.Print("Rate:         %s", rateColumn(profile.HourlyRate, profile.Currency))
	if profile.Rating != nil {
		p.Print("Rating:       %.1f/5.0", *profile.Rating)
	}
	if len(profile.Skills) > 0 {
		names := make([]string, len(profile.Skills))
		for i, s := range profile.Skills {
			names[i] = s.Name
		}
		p.Print("Skills:       %s", strings.Join(names, ", "))
	}
	if profile.Bio != nil {
		p.Print("\n%s", *profile.Bio)
	}
}

// rateColumn renders an hourly rate, degrading to "Negotiable" when unset.
func rateColumn(rate *float64, currency string) string {
	if rate == nil {
		return "Negotiable"
	}
	return format.Currency(*rate, currency) + "/hr"
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
