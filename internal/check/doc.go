// Package check evaluates declarative expectations against captured
// log records and metric instruments.
//
// Expectations are declared in YAML:
//
//	logs:
//	  - param: "https://idp"        # value expected among record parameters
//	    count: 1                    # optional, defaults to exactly one
//	metrics:
//	  - name: http_requests_total
//	    tag: uri
//	    values: ["/a", "/b"]        # expected tag values, in order
//
// Each rule is evaluated with the pure queries from pkg/obsassert and
// reported with the actual count or joined values on failure.
package check
