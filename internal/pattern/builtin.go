package pattern

// Surface heights of the built-in catalog's routes.
const (
	yTop   = 80
	yMid   = 170
	yLow   = 260
	yFloor = 350
)

func platform(x, y, w float64, r Route) PlatformDef {
	return PlatformDef{XOffset: x, YOffset: y, Width: w, Route: r, Probability: 1}
}

func optional(x, y, w float64, r Route, prob float64) PlatformDef {
	return PlatformDef{XOffset: x, YOffset: y, Width: w, Route: r, Probability: prob}
}

func ground(x, y, prob float64) SocketDef {
	return SocketDef{XOffset: x, YOffset: y, Kind: KindHazard, Subtype: SubtypeGround, Probability: prob}
}

func cord(x, y, prob float64) SocketDef {
	return SocketDef{XOffset: x, YOffset: y, Kind: KindHazard, Subtype: SubtypeCord, Probability: prob}
}

func item(x, y float64, tier string, prob float64) SocketDef {
	return SocketDef{XOffset: x, YOffset: y, Kind: KindItem, Subtype: tier, Probability: prob}
}

// TutorialID is the pattern always placed first.
const TutorialID = "p0"

var builtin = []Pattern{
	{
		// Tutorial: one long low run with two sensors to hop.
		ID: "p0", Difficulty: Easy, Width: 800,
		Platforms: []PlatformDef{
			platform(0, yLow, 800, RouteLow),
		},
		Sockets: []SocketDef{
			ground(300, yLow, 1),
			ground(600, yLow, 1),
			item(450, yLow, SubtypeItemA, 1),
			item(150, yLow, SubtypeItemA, 0.5),
			item(700, yLow, SubtypeItemA, 0.5),
		},
	},
	{
		// Stairs up.
		ID: "p1", Difficulty: Easy, Width: 800,
		Platforms: []PlatformDef{
			platform(0, yLow, 200, RouteLow),
			platform(250, yMid, 200, RouteMid),
			platform(500, yTop, 200, RouteTop),
			optional(750, yMid, 100, RouteMid, 0.5),
		},
		Sockets: []SocketDef{
			item(340, yMid, SubtypeItemB, 1),
			item(590, yTop, SubtypeItemC, 1),
			ground(300, yFloor, 0.8),
			cord(100, yLow, 0.5),
		},
	},
	{
		// Tunnel under a long mid deck.
		ID: "p2", Difficulty: Medium, Width: 800,
		Platforms: []PlatformDef{
			platform(0, yLow, 100, RouteLow),
			platform(100, yMid, 600, RouteMid),
			platform(700, yLow, 100, RouteLow),
		},
		Sockets: []SocketDef{
			cord(250, yMid, 0.9),
			cord(550, yMid, 0.9),
			item(400, yMid, SubtypeItemB, 1),
			ground(400, yFloor, 0.7),
		},
	},
	{
		ID: "p3", Difficulty: Medium, Width: 900,
		Platforms: []PlatformDef{
			platform(0, yLow, 150, RouteLow),
			platform(150, yMid, 200, RouteMid),
			platform(350, yTop, 200, RouteTop),
			platform(550, yMid, 350, RouteMid),
			optional(400, yLow, 100, RouteLow, 0.5),
		},
		Sockets: []SocketDef{
			item(440, yTop, SubtypeItemC, 0.8),
			ground(700, yMid, 0.6),
			cord(450, yTop, 0.5),
			cord(50, yLow, 0.5),
		},
	},
	{
		// Island hopping.
		ID: "p4", Difficulty: Hard, Width: 900,
		Platforms: []PlatformDef{
			platform(0, yLow, 100, RouteLow),
			platform(150, yMid, 100, RouteMid),
			platform(300, yTop, 100, RouteTop),
			platform(450, yMid, 100, RouteMid),
			platform(600, yLow, 100, RouteLow),
			platform(750, yLow, 150, RouteLow),
			optional(550, yTop, 80, RouteTop, 0.4),
		},
		Sockets: []SocketDef{
			item(190, yMid, SubtypeItemB, 1),
			item(340, yTop, SubtypeItemC, 1),
			item(490, yMid, SubtypeItemB, 1),
			ground(225, yFloor, 1),
			ground(525, yFloor, 1),
			cord(50, yLow, 0.5),
			cord(650, yLow, 0.5),
		},
	},
	{
		ID: "p5", Difficulty: Hard, Width: 800,
		Platforms: []PlatformDef{
			platform(0, yLow, 150, RouteLow),
			platform(150, yMid, 100, RouteMid),
			platform(250, yTop, 400, RouteTop),
			platform(650, yMid, 150, RouteMid),
		},
		Sockets: []SocketDef{
			ground(450, yTop, 0.9),
			item(350, yTop, SubtypeItemC, 1),
			ground(450, yFloor, 0.9),
			cord(75, yLow, 0.5),
			item(700, yMid, SubtypeItemA, 0.7),
		},
	},
	{
		// Double deck.
		ID: "p6", Difficulty: Hard, Width: 900,
		Platforms: []PlatformDef{
			platform(0, yLow, 100, RouteLow),
			platform(100, yLow, 700, RouteLow),
			platform(100, yTop, 700, RouteTop),
			platform(800, yLow, 100, RouteLow),
		},
		Sockets: []SocketDef{
			cord(300, yTop, 0.8),
			cord(600, yTop, 0.8),
			cord(250, yLow, 0.5),
			cord(550, yLow, 0.5),
			ground(450, yLow, 0.7),
			item(450, yTop, SubtypeItemC, 0.9),
		},
	},
	{
		ID: "p7", Difficulty: Medium, Width: 800,
		Platforms: []PlatformDef{
			platform(0, yLow, 200, RouteLow),
			platform(200, yMid, 400, RouteMid),
			platform(600, yLow, 200, RouteLow),
			optional(350, yTop, 100, RouteTop, 0.4),
		},
		Sockets: []SocketDef{
			ground(400, yMid, 0.6),
			item(400, yFloor, SubtypeItemA, 0.5),
			item(250, yLow, SubtypeItemB, 0.5),
			cord(100, yLow, 0.5),
			cord(700, yLow, 0.5),
		},
	},
	{
		ID: "p8", Difficulty: Medium, Width: 800,
		Platforms: []PlatformDef{
			platform(0, yLow, 100, RouteLow),
			platform(100, yMid, 150, RouteMid),
			platform(250, yLow, 300, RouteLow),
			platform(550, yMid, 150, RouteMid),
			platform(700, yLow, 100, RouteLow),
		},
		Sockets: []SocketDef{
			ground(400, yLow, 0.7),
			cord(300, yLow, 0.5),
			cord(500, yLow, 0.5),
			item(165, yMid, SubtypeItemB, 0.9),
			item(615, yMid, SubtypeItemB, 0.9),
		},
	},
	{
		ID: "p9", Difficulty: Hard, Width: 1000,
		Platforms: []PlatformDef{
			platform(0, yLow, 150, RouteLow),
			platform(150, yMid, 150, RouteMid),
			platform(300, yTop, 400, RouteTop),
			platform(700, yMid, 150, RouteMid),
			platform(850, yLow, 150, RouteLow),
			optional(400, yLow, 200, RouteLow, 0.3),
		},
		Sockets: []SocketDef{
			ground(500, yTop, 0.7),
			item(350, yTop, SubtypeItemC, 0.8),
			item(650, yTop, SubtypeItemC, 0.8),
			cord(225, yMid, 0.5),
			cord(775, yMid, 0.5),
			cord(75, yLow, 0.5),
		},
	},
	{
		ID: "p10", Difficulty: Easy, Width: 800,
		Platforms: []PlatformDef{
			platform(0, yLow, 250, RouteLow),
			platform(250, yMid, 300, RouteMid),
			platform(550, yLow, 250, RouteLow),
			optional(350, yTop, 100, RouteTop, 0.4),
		},
		Sockets: []SocketDef{
			item(400, yMid, SubtypeItemA, 1),
			ground(125, yLow, 0.6),
			ground(675, yLow, 0.6),
			cord(200, yLow, 0.5),
			cord(600, yLow, 0.5),
		},
	},
}

// Builtin returns the built-in catalog.
func Builtin() *Library {
	lib, err := NewLibrary(builtin)
	if err != nil {
		panic(err) // built-in data is validated by tests
	}
	return lib
}
