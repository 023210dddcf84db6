package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/sixdegrees/pkg/game"
)

// formatCenter describes a newly chosen center.
func formatCenter(r *game.CenterReport) string {
	name := StyleHighlight.Render(r.Center)
	if r.Alone {
		return fmt.Sprintf("%s is now the center of the acting universe, connected to no other actor", name)
	}
	return fmt.Sprintf("%s is now the center of the acting universe, connected to %s actor(s) with average separation %s",
		name, StyleNumber.Render(strconv.Itoa(r.Reach-1)), StyleNumber.Render(fmt.Sprintf("%.3f", r.Average)))
}

// formatPath prints an actor's number followed by one line per shared movie link.
func formatPath(r *game.PathReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s's number is %s", StyleHighlight.Render(r.Actor), StyleNumber.Render(strconv.Itoa(r.Number)))
	for _, s := range r.Steps {
		fmt.Fprintf(&b, "\n  %s appeared in %s with %s",
			StyleValue.Render(s.Actor), StyleDim.Render("["+s.Movies.String()+"]"), StyleValue.Render(s.CoStar))
	}
	return b.String()
}

// formatSeparated lists actors and their separation from the center.
func formatSeparated(list []game.Separated, low, high int) string {
	if len(list) == 0 {
		return infoLine("no actors with separation between %d and %d", low, high)
	}
	rows := make([][]string, len(list))
	for i, s := range list {
		rows[i] = []string{s.Actor, strconv.Itoa(s.Separation)}
	}
	return renderTable([]string{"Actor", "Separation"}, rows)
}

// formatConnected lists actors and their number of co-stars.
func formatConnected(list []game.Connected, low, high int) string {
	if len(list) == 0 {
		return infoLine("no actors with degree between %d and %d", low, high)
	}
	rows := make([][]string, len(list))
	for i, c := range list {
		rows[i] = []string{c.Actor, strconv.Itoa(c.Degree)}
	}
	return renderTable([]string{"Actor", "Co-stars"}, rows)
}

// formatMissing lists the actors that cannot reach center.
func formatMissing(missing []string, center string) string {
	if len(missing) == 0 {
		return infoLine("every actor is connected to %s", center)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s actor(s) have no path to %s:",
		StyleNumber.Render(strconv.Itoa(len(missing))), StyleHighlight.Render(center))
	for _, a := range missing {
		b.WriteString("\n  " + StyleValue.Render(a))
	}
	return b.String()
}

// formatCenters ranks candidate centers by average separation.
func formatCenters(list []game.Center) string {
	if len(list) == 0 {
		return infoLine("no actor connected to the center has co-stars")
	}
	rows := make([][]string, len(list))
	for i, c := range list {
		rows[i] = []string{strconv.Itoa(i + 1), c.Vertex, fmt.Sprintf("%.3f", c.Average), strconv.Itoa(c.Reach)}
	}
	return renderTable([]string{"#", "Actor", "Average", "Reach"}, rows)
}
