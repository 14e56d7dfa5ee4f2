package services

type eventDeps struct {
	rt *RealtimeHub
}

var _events eventDeps

func InitEventDeps(rt *RealtimeHub) {
	_events = eventDeps{rt: rt}
}

// EmitEvent pushes a domain event to the user's open connections. Safe
// to call before InitEventDeps (it no-ops), so services never need to
// know whether realtime is wired.
func EmitEvent(userID uint, kind string, payload any) {
	if _events.rt == nil {
		return
	}
	_events.rt.Broadcast(userID, map[string]any{
		"kind": kind,
		"data": payload,
	})
}
