package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"wellness/internal/responder"
)

// Reply paths reported on wellness_replies_total.
const (
	PathCrisis     = "crisis"
	PathPositive   = "positive"
	PathSupportive = "supportive"
)

// PathFor maps a classification to the reply path label.
func PathFor(result responder.ClassificationResult) string {
	switch {
	case result.Crisis:
		return PathCrisis
	case result.Tags.Has(responder.TagPositive):
		return PathPositive
	default:
		return PathSupportive
	}
}

// Recorder counts composed replies. Counts only; message text is never recorded.
type Recorder struct {
	replies *prometheus.CounterVec
	tags    *prometheus.CounterVec
}

// NewRecorder creates a recorder and registers its collectors with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		replies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wellness_replies_total",
			Help: "Total composed replies by response path",
		}, []string{"path", "source"}),
		tags: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wellness_category_matches_total",
			Help: "Total category tags matched in incoming messages",
		}, []string{"tag"}),
	}
	reg.MustRegister(r.replies, r.tags)
	return r
}

// RecordReply counts one reply. source names the surface that produced it ("web", "api").
func (r *Recorder) RecordReply(path, source string, tags []string) {
	if r == nil {
		return
	}
	r.replies.WithLabelValues(path, source).Inc()
	for _, t := range tags {
		r.tags.WithLabelValues(t).Inc()
	}
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the recorder with the default registry.
// Must be called once at startup; later calls return the same recorder.
func Init() *Recorder {
	recorderOnce.Do(func() {
		recorder = NewRecorder(prometheus.DefaultRegisterer)
	})
	return recorder
}
