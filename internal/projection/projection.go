package projection

import (
	"math/rand"
	"time"

	eventmodels "io.myazahq.khalidlifestyle/internal/models/event"
)

const dateLayout = "2006-01-02"

// NormalizeDate converts a stored date value to YYYY-MM-DD. Firestore hands
// back timestamps as time.Time; older documents carry the date as an ISO
// string already.
func NormalizeDate(v interface{}) string {
	switch d := v.(type) {
	case time.Time:
		return d.UTC().Format(dateLayout)
	case string:
		return d
	default:
		return ""
	}
}

// FormatLong renders a normalized YYYY-MM-DD date in the long display form
// used by the site ("December 31, 2025"). Unparseable input is returned
// unchanged so a bad document never blanks a listing.
func FormatLong(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}

// SplitPastUpcoming partitions events around today's midnight in now's
// location. An event dated exactly today is upcoming, not past. Events whose
// date does not parse are kept visible in the upcoming view.
func SplitPastUpcoming(events []eventmodels.Event, now time.Time) (past, upcoming []eventmodels.Event) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, ev := range events {
		d, err := time.ParseInLocation(dateLayout, ev.Date, now.Location())
		if err == nil && d.Before(midnight) {
			past = append(past, ev)
			continue
		}
		upcoming = append(upcoming, ev)
	}

	return past, upcoming
}

type HeroItem struct {
	Type string `json:"type"`
	Src  string `json:"src"`
}

var defaultHeroMedia = []HeroItem{
	{Type: eventmodels.MediaTypeImage, Src: "/luxury-nightclub-interior.jpg"},
	{Type: eventmodels.MediaTypeImage, Src: "/champagne-sparklers-vip.jpg"},
	{Type: eventmodels.MediaTypeImage, Src: "/luxury-fashion-party.jpg"},
	{Type: eventmodels.MediaTypeVideo, Src: "https://v0.blob.com/nightlife-sample-video.mp4"},
}

// HeroMedia assembles the hero carousel pool: the first three images of every
// event, then every video, falling back to stock media when nothing has been
// uploaded yet.
func HeroMedia(events []eventmodels.Event) []HeroItem {
	var media []HeroItem

	for _, ev := range events {
		images := 0
		for _, item := range ev.Items {
			if item.Type != eventmodels.MediaTypeImage {
				continue
			}
			media = append(media, HeroItem{Type: item.Type, Src: item.Src})
			images++
			if images == 3 {
				break
			}
		}
	}

	for _, ev := range events {
		for _, item := range ev.Items {
			if item.Type == eventmodels.MediaTypeVideo {
				media = append(media, HeroItem{Type: item.Type, Src: item.Src})
			}
		}
	}

	if len(media) == 0 {
		media = append(media, defaultHeroMedia...)
	}

	return media
}

// Shuffle returns a Fisher-Yates shuffled copy; the input is not modified.
func Shuffle(media []HeroItem, rng *rand.Rand) []HeroItem {
	shuffled := make([]HeroItem, len(media))
	copy(shuffled, media)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
