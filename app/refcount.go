package app

import "sync"

var systems = struct {
	sync.Mutex
	refs map[WindowSystem]int
}{refs: map[WindowSystem]int{}}

// acquireSystem initializes ws on first use. The first user's onError stays
// installed until the last user releases ws.
func acquireSystem(ws WindowSystem, onError func(error)) error {
	systems.Lock()
	defer systems.Unlock()

	if systems.refs[ws] == 0 {
		ws.SetErrorCallback(onError)
		if err := ws.Init(); err != nil {
			ws.SetErrorCallback(nil)
			return err
		}
	}
	systems.refs[ws]++
	return nil
}

// releaseSystem terminates ws and clears its error callback when the last
// user lets go.
func releaseSystem(ws WindowSystem) {
	systems.Lock()
	defer systems.Unlock()

	n := systems.refs[ws]
	if n == 0 {
		return
	}
	if n == 1 {
		delete(systems.refs, ws)
		defer ws.SetErrorCallback(nil)
		ws.Terminate()
		return
	}
	systems.refs[ws] = n - 1
}

func systemRefs(ws WindowSystem) int {
	systems.Lock()
	defer systems.Unlock()
	return systems.refs[ws]
}
