package engine

import (
	"github.com/sirupsen/logrus"
)

// announce показывает надпись над игроком и пишет её в лог забега.
func (g *Game) announce(text string, color uint32, fields logrus.Fields) {
	w := g.world
	p := w.Player
	w.AddText(p.X, p.Y-w.Tile, text, color)

	g.log.WithFields(fields).WithFields(logrus.Fields{
		"stage": g.prog.Stage,
		"tick":  w.Tick,
	}).Info(text)
}
