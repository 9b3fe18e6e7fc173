//go:build !windows

package locate

// DefaultCandidates are the usual Steam roots on Linux and macOS, relative to home.
var DefaultCandidates = []string{
	".steam/steam",
	".local/share/Steam",
	".var/app/com.valvesoftware.Steam/.local/share/Steam",
	"Library/Application Support/Steam",
}

// DefaultMarkers confirm a Steam root.
var DefaultMarkers = []string{"steam.sh", "Steam.AppBundle", "steamui"}

func platformResolver() Resolver {
	return Probe{Candidates: DefaultCandidates, Markers: DefaultMarkers}
}
