package feed

import (
	"strings"
	"time"

	"github.com/beevik/etree"

	deprecations "github.com/leblancfg/deprecations-rss"
)

// rssTimeFormat is RFC 1123 with a literal GMT zone, as RSS 2.0 readers
// expect.
const rssTimeFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

// maxDescriptionContext caps how much of the raw page context lands in an
// RSS description before it gets truncated.
const maxDescriptionContext = 500

// BuildRSS renders deprecation records as an RSS 2.0 document.
func BuildRSS(items []deprecations.DeprecationItem, now time.Time) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	rss := doc.CreateElement("rss")
	rss.CreateAttr("version", "2.0")

	channel := rss.CreateElement("channel")
	channel.CreateElement("title").SetText(Title)
	channel.CreateElement("link").SetText(HomePageURL)
	channel.CreateElement("description").SetText("RSS feed tracking deprecations across major AI providers")
	channel.CreateElement("language").SetText("en-us")
	channel.CreateElement("lastBuildDate").SetText(now.UTC().Format(rssTimeFormat))

	for _, item := range items {
		el := channel.CreateElement("item")
		el.CreateElement("title").SetText(itemTitle(item))
		el.CreateElement("link").SetText(item.URL)
		el.CreateElement("description").SetText(rssDescription(item))

		guid := el.CreateElement("guid")
		guid.CreateAttr("isPermaLink", "false")
		guid.SetText(rssGUID(item))

		if pub := rssPubDate(item.ScrapedAt, now); pub != "" {
			el.CreateElement("pubDate").SetText(pub)
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToString()
	if err != nil {
		return "", deprecations.Errorf(deprecations.EINTERNAL, "serialize rss: %v", err)
	}
	return out, nil
}

// rssDescription builds the plain-text body: labeled fields first, then a
// blank line, then the summary or a truncated slice of the page context.
func rssDescription(item deprecations.DeprecationItem) string {
	var lines []string
	add := func(label, value string) {
		if value != "" {
			lines = append(lines, label+": "+value)
		}
	}

	add("Provider", item.Provider)
	add("Model ID", item.ModelID)
	add("Model", item.ModelName)
	if item.ShutdownDate != "" {
		add("Shutdown Date", item.ShutdownDate)
	} else {
		add("Announcement Date", item.AnnouncementDate)
	}
	add("Replacement", item.ReplacementModel)
	add("First Observed", item.FirstObserved)
	add("Last Observed", item.LastObserved)

	body := item.Summary
	if body == "" {
		body = item.Context
		if len(body) > maxDescriptionContext {
			body = body[:maxDescriptionContext] + "..."
		}
	}
	if body != "" {
		lines = append(lines, "", body)
	}
	return strings.Join(lines, "\n")
}

// rssGUID is a stable identifier built from the fields that define an
// entry. A moved shutdown date produces a new GUID so readers surface the
// change as a fresh item.
func rssGUID(item deprecations.DeprecationItem) string {
	parts := []string{item.Provider, item.ModelID, item.ShutdownDate}
	joined := strings.Join(parts, "|")
	return deprecations.HashContent(joined)
}

// rssPubDate converts the RFC 3339 scrape timestamp to the RSS wire
// format, falling back to the build time when the item carries none.
func rssPubDate(scrapedAt string, now time.Time) string {
	if scrapedAt == "" {
		return now.UTC().Format(rssTimeFormat)
	}
	t, err := time.Parse(time.RFC3339, scrapedAt)
	if err != nil {
		return now.UTC().Format(rssTimeFormat)
	}
	return t.UTC().Format(rssTimeFormat)
}
