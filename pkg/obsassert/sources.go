package obsassert

import (
	"obskit/pkg/logcapture"
	"obskit/pkg/metriccapture"
)

// LogRecordSource exposes an ordered sequence of captured log records.
// logcapture.Handler satisfies it; any log-capture facility that can
// materialize its records does too.
type LogRecordSource interface {
	Records() []logcapture.Record
}

// TaggedInstrumentSource exposes an ordered sequence of instrument
// identities with key-to-value tag lookup. spancapture.Exporter
// satisfies it; Prometheus registries adapt through
// metriccapture.FromGatherer and InstrumentList.
type TaggedInstrumentSource interface {
	Instruments() []metriccapture.Instrument
}

// RecordList adapts a plain record slice to LogRecordSource.
type RecordList []logcapture.Record

// Records implements LogRecordSource.
func (l RecordList) Records() []logcapture.Record { return l }

// InstrumentList adapts a plain instrument slice to
// TaggedInstrumentSource.
type InstrumentList []metriccapture.Instrument

// Instruments implements TaggedInstrumentSource.
func (l InstrumentList) Instruments() []metriccapture.Instrument { return l }

// CountFromSource counts the source's records carrying attribute as a
// parameter. See CountRecordsWithParam.
func CountFromSource(attribute any, src LogRecordSource) int {
	return CountRecordsWithParam(attribute, src.Records())
}

// JoinFromSource joins the tag values for key across the source's
// instruments. See JoinTagValues.
func JoinFromSource(key string, src TaggedInstrumentSource) string {
	return JoinTagValues(key, src.Instruments())
}
