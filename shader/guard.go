package shader

// guard releases the GPU objects registered with it unless dismissed.
// Releases run in reverse registration order.
type guard struct {
	releases  []func()
	dismissed bool
}

func (g *guard) add(release func()) {
	g.releases = append(g.releases, release)
}

func (g *guard) dismiss() {
	g.dismissed = true
}

func (g *guard) release() {
	if g.dismissed {
		return
	}
	for i := len(g.releases) - 1; i >= 0; i-- {
		g.releases[i]()
	}
	g.releases = nil
}
