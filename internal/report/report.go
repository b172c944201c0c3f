// Package report renders the current trend snapshot as a PDF document.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"trendmint/internal/models"

	"github.com/jung-kurt/gofpdf"
)

// ---------- design system ----------

var (
	cBlue   = [3]int{27, 58, 84}
	cBlueLt = [3]int{44, 82, 110}
	cGreen  = [3]int{42, 107, 69}
	cCream  = [3]int{248, 247, 243}
	cInk90  = [3]int{38, 38, 38}
	cInk75  = [3]int{64, 64, 64}
	cInk50  = [3]int{107, 107, 107}
	cInk30  = [3]int{160, 160, 160}
	cInk15  = [3]int{217, 217, 217}
	cInk08  = [3]int{235, 235, 235}
	cWhite  = [3]int{255, 255, 255}
)

const (
	pageW    = 210.0
	pageH    = 297.0
	marginL  = 20.0
	marginR  = 20.0
	marginT  = 20.0
	contentW = pageW - marginL - marginR
)

func setFill(pdf *gofpdf.Fpdf, c [3]int) { pdf.SetFillColor(c[0], c[1], c[2]) }
func setText(pdf *gofpdf.Fpdf, c [3]int) { pdf.SetTextColor(c[0], c[1], c[2]) }
func setDraw(pdf *gofpdf.Fpdf, c [3]int) { pdf.SetDrawColor(c[0], c[1], c[2]) }

var typographyReplacer = strings.NewReplacer(
	"–", "-", "—", "-", "‘", "'", "’", "'",
	"“", "\"", "”", "\"", "…", "...", " ", " ",
	"&amp;", "&", "&quot;", "\"", "&#39;", "'",
)

// transliterate maps typographic punctuation to ASCII and drops
// anything the core PDF fonts cannot encode. Trend names and video
// titles routinely carry emoji and non-latin scripts.
func transliterate(s string) string {
	s = typographyReplacer.Replace(s)
	var sb strings.Builder
	for _, r := range s {
		if r >= 0x20 && r < 0x7F {
			sb.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

// clip truncates a transliterated string to max bytes.
func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// ensureSpace checks if there's enough room; if not, adds a page.
func ensureSpace(pdf *gofpdf.Fpdf, needed float64) float64 {
	y := pdf.GetY()
	if y+needed > pageH-25 {
		pdf.AddPage()
		return marginT + 10
	}
	return y
}

// sectionHeading draws a small-caps label with an accent rule under it.
func sectionHeading(pdf *gofpdf.Fpdf, title string) {
	y := ensureSpace(pdf, 30)
	pdf.SetY(y)
	pdf.SetX(marginL)
	pdf.SetFont("Helvetica", "B", 7)
	setText(pdf, cInk30)
	pdf.CellFormat(contentW, 4, strings.ToUpper(title), "", 1, "L", false, 0, "")
	lineY := pdf.GetY() + 1
	setDraw(pdf, cBlue)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginL, lineY, pageW-marginR, lineY)
	pdf.SetY(lineY + 2.5)
}

// listRow draws one numbered row, with alternating cream backgrounds.
func listRow(pdf *gofpdf.Fpdf, i int, left, right string) {
	y := ensureSpace(pdf, 7)
	pdf.SetY(y)
	if i%2 == 0 {
		setFill(pdf, cCream)
		pdf.Rect(marginL, y-0.5, contentW, 6, "F")
	}
	pdf.SetXY(marginL+2, y)
	pdf.SetFont("Courier", "", 8)
	setText(pdf, cInk30)
	pdf.CellFormat(8, 5, fmt.Sprintf("%d.", i+1), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8.5)
	setText(pdf, cInk75)
	rightW := 0.0
	if right != "" {
		rightW = 42.0
	}
	pdf.CellFormat(contentW-12-rightW, 5, clip(transliterate(left), 80), "", 0, "L", false, 0, "")
	if right != "" {
		pdf.SetFont("Courier", "", 7.5)
		setText(pdf, cBlue)
		pdf.CellFormat(rightW, 5, clip(transliterate(right), 40), "", 0, "R", false, 0, "")
	}
	pdf.SetY(y + 6)
}

// Build renders the snapshot into a PDF and returns its bytes.
func Build(snap models.Snapshot) ([]byte, error) {
	dateDisplay := snap.LastUpdate.Format("02 Jan 2006 15:04 MST")
	if snap.LastUpdate.IsZero() {
		dateDisplay = "never"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginL, 15, marginR)
	pdf.SetAutoPageBreak(false, 20)

	isFirstPage := true

	pdf.SetFooterFunc(func() {
		pdf.SetY(-14)
		setDraw(pdf, cInk08)
		pdf.SetLineWidth(0.3)
		pdf.Line(marginL, pdf.GetY(), pageW-marginR, pdf.GetY())
		pdf.SetY(-11)
		pdf.SetFont("Helvetica", "", 6.5)
		setText(pdf, cInk30)
		pdf.SetX(marginL)
		pdf.CellFormat(contentW/2, 8, "TrendMint", "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW/2, 8, fmt.Sprintf("%d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.SetHeaderFunc(func() {
		if isFirstPage {
			return
		}
		pdf.SetY(8)
		pdf.SetX(marginL)
		pdf.SetFont("Helvetica", "B", 8)
		setText(pdf, cBlue)
		pdf.CellFormat(contentW/2, 4, "TrendMint", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 7)
		setText(pdf, cInk30)
		pdf.CellFormat(contentW/2, 4, transliterate("Trend report, "+dateDisplay), "", 0, "R", false, 0, "")
		setDraw(pdf, cBlue)
		pdf.SetLineWidth(0.5)
		pdf.Line(marginL, 13.5, pageW-marginR, 13.5)
	})

	// ---------- cover band ----------
	pdf.AddPage()

	headerH := 52.0
	setFill(pdf, cBlue)
	pdf.Rect(0, 0, pageW, headerH, "F")
	setFill(pdf, cBlueLt)
	pdf.Rect(0, headerH-3, pageW, 3, "F")

	pdf.SetXY(marginL, 14)
	pdf.SetFont("Helvetica", "B", 28)
	setText(pdf, cWhite)
	pdf.CellFormat(contentW, 10, "TrendMint", "", 1, "L", false, 0, "")

	pdf.SetDrawColor(255, 255, 255)
	pdf.SetLineWidth(0.3)
	pdf.Line(marginL, 27, marginL+35, 27)

	pdf.SetXY(marginL, 30)
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(210, 220, 230)
	pdf.CellFormat(contentW, 6, "Trend Report", "", 1, "L", false, 0, "")

	pdf.SetXY(marginL, 38)
	pdf.SetFont("Helvetica", "", 8.5)
	pdf.SetTextColor(170, 185, 200)
	pdf.CellFormat(contentW, 5, transliterate("Data collected "+dateDisplay), "", 1, "L", false, 0, "")

	// ---------- summary card ----------
	cardW := 150.0
	cardX := (pageW - cardW) / 2
	cardY := headerH - 10
	cardH := 28.0

	setFill(pdf, [3]int{210, 210, 210})
	pdf.RoundedRect(cardX+1.5, cardY+1.5, cardW, cardH, 4, "1234", "F")
	setFill(pdf, cWhite)
	pdf.RoundedRect(cardX, cardY, cardW, cardH, 4, "1234", "F")

	pdf.SetXY(cardX+12, cardY+4)
	pdf.SetFont("Courier", "B", 30)
	setText(pdf, cBlue)
	pdf.CellFormat(cardW/2-12, 10, fmt.Sprintf("%d", snap.TotalItems()), "", 0, "L", false, 0, "")
	pdf.SetXY(cardX+12, cardY+18)
	pdf.SetFont("Helvetica", "", 8.5)
	setText(pdf, cInk50)
	pdf.CellFormat(cardW/2-12, 4, "items cached", "", 0, "L", false, 0, "")

	setDraw(pdf, cInk15)
	pdf.SetLineWidth(0.3)
	pdf.Line(cardX+cardW/2, cardY+6, cardX+cardW/2, cardY+cardH-6)

	pdf.SetXY(cardX+cardW/2+8, cardY+4)
	pdf.SetFont("Courier", "B", 30)
	setText(pdf, cGreen)
	pdf.CellFormat(cardW/2-20, 10, fmt.Sprintf("%d", snap.UpdateCount), "", 0, "R", false, 0, "")
	pdf.SetXY(cardX+cardW/2+8, cardY+18)
	pdf.SetFont("Helvetica", "", 8.5)
	setText(pdf, cInk50)
	pdf.CellFormat(cardW/2-20, 4, "refresh cycles", "", 0, "R", false, 0, "")

	pdf.SetY(cardY + cardH + 12)
	isFirstPage = false

	// ---------- sections ----------
	if len(snap.GoogleTrends) > 0 {
		sectionHeading(pdf, "Google Search Trends")
		for i, t := range snap.GoogleTrends {
			listRow(pdf, i, t, "")
		}
		pdf.Ln(4)
	}

	if len(snap.TwitterTrends) > 0 {
		sectionHeading(pdf, "Twitter Trends")
		for i, t := range snap.TwitterTrends {
			listRow(pdf, i, t, "")
		}
		pdf.Ln(4)
	}

	if len(snap.YouTubeTitles) > 0 {
		sectionHeading(pdf, "YouTube Trending")
		for i, t := range snap.YouTubeTitles {
			listRow(pdf, i, t, "")
		}
		pdf.Ln(4)
	}

	if len(snap.RedditPosts) > 0 {
		sectionHeading(pdf, "Reddit Hot Posts")
		for i, p := range snap.RedditPosts {
			listRow(pdf, i, p.Title, fmt.Sprintf("%d pts r/%s", p.Score, p.Subreddit))
		}
		pdf.Ln(4)
	}

	if len(snap.TrendingCoins) > 0 {
		sectionHeading(pdf, "Trending Coins")
		for i, c := range snap.TrendingCoins {
			rank := "rank n/a"
			if c.MarketCapRank > 0 {
				rank = fmt.Sprintf("rank #%d", c.MarketCapRank)
			}
			listRow(pdf, i, fmt.Sprintf("%s ($%s)", c.Name, strings.ToUpper(c.Symbol)), rank)
		}
		pdf.Ln(4)
	}

	if len(snap.NewsHeadlines) > 0 {
		sectionHeading(pdf, "Crypto News")
		for i, h := range snap.NewsHeadlines {
			listRow(pdf, i, h.Title, "")
		}
		pdf.Ln(4)
	}

	if len(snap.MarketQuotes) > 0 {
		sectionHeading(pdf, "Markets")
		for i, q := range snap.MarketQuotes {
			listRow(pdf, i, q.Label, fmt.Sprintf("$%.2f", q.Price))
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}
