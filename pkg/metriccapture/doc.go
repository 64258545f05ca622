// Package metriccapture enumerates metric instrument identities from a
// Prometheus registry or a metrics exposition snapshot.
//
// An instrument identity is the name, type and tag (label) set of one
// metric series. The package flattens a registry's metric families into
// a deterministic instrument list so that tag values can be inspected,
// joined and asserted on without touching the measurement values.
//
// Example usage:
//
//	reg := prometheus.NewRegistry()
//	// ... register and exercise collectors ...
//
//	instruments, err := metriccapture.FromGatherer(reg)
//	if err != nil {
//	    return err
//	}
//	for _, in := range metriccapture.Filter(instruments, "http_requests_total") {
//	    fmt.Println(in.Tag("path"))
//	}
package metriccapture
