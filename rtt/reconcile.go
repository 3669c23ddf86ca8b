package rtt

// reconcile aligns a possibly-partial hardware result set to the request's
// peer order. Hardware entries are matched by address; peers without a match
// get a synthesized failed entry with zeroed metrics, entries for addresses
// not in the request are dropped. The returned set always has exactly one
// entry per requested peer, in request order.
func reconcile(request RangingRequest, results ResultSet) ResultSet {
	byAddr := make(map[string]*RangingResult, len(results))
	for i := range results {
		byAddr[string(results[i].Addr)] = &results[i]
	}

	out := make(ResultSet, 0, len(request.Peers))
	for _, peer := range request.Peers {
		if match, ok := byAddr[string(peer.Addr)]; ok {
			out = append(out, *match)
		} else {
			out = append(out, RangingResult{Addr: peer.Addr, Status: StatusFail})
		}
	}
	return out
}
