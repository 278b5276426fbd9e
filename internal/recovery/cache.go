package recovery

import (
	"github.com/cwbudde/esxdts/internal/identkind"
	"github.com/cwbudde/esxdts/internal/model"
)

// enrichFromCache implements spec section 4.4's "Cache enrichment": real
// (non-placeholder) XML parameter names not already matched from the local
// window are looked up in the master cache, first as a "class cache" pass
// and then, for whatever remains unmatched, as a "global cache" pass. Both
// passes read the same merged master cache (spec section 9, Open Question
// (a)); they are kept as two loops so a future implementation that
// restricts the first pass to a locality window can diverge without
// reshaping this function's contract.
func (e *Engine) enrichFromCache(params []model.Parameter, matches []model.ParamMatch) []model.ParamMatch {
	matched := make(map[string]bool, len(matches))
	for _, m := range matches {
		matched[m.Name] = true
	}

	matches = e.cachePass(params, matches, matched, model.SourceClassCache)
	matches = e.cachePass(params, matches, matched, model.SourceGlobalCache)
	return matches
}

func (e *Engine) cachePass(params []model.Parameter, matches []model.ParamMatch, matched map[string]bool, source model.MatchSource) []model.ParamMatch {
	for _, p := range params {
		if !identkind.IsRealIdentifier(p.Name) || matched[p.Name] {
			continue
		}
		desc, ok := e.master[p.Name]
		if !ok {
			continue
		}
		matches = append(matches, model.ParamMatch{Name: p.Name, Desc: desc, Source: source})
		matched[p.Name] = true
	}
	return matches
}
