package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// drawHUD paints the frame diagnostics panel in the top-left corner.
func (g *Game) drawHUD(screen *ebiten.Image) {
	const panelW, panelH = 248, 118
	vector.DrawFilledRect(screen, 6, 6, panelW, panelH, color.RGBA{0, 0, 0, 150}, false)

	overSoft, overHard := g.stats.DegradedFrames()
	lines := []string{
		fmt.Sprintf("FPS %.1f  TPS %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("build %.2fms avg %.2fms", g.stats.LastFrameMs(), g.stats.AvgFrameMs()),
		fmt.Sprintf("over budget %d soft / %d hard", overSoft, overHard),
		fmt.Sprintf("items %d  tiles %d", g.stats.PaintedItems(), g.stats.VisibleTiles()),
		fmt.Sprintf("entities %d  chunks %d", g.snapshot.Count(), g.tiles.Len()),
		fmt.Sprintf("cam %.0f,%.0f", g.camera.X, g.camera.Y),
	}
	if g.sync != nil {
		lines = append(lines, fmt.Sprintf("sync ops %d pending %d", g.stats.DrainedOps(), g.sync.PendingCount()))
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 12, 10+i*14)
	}

	if g.interiorDebug {
		g.drawClusterLabels(screen)
	}
}

// drawClusterLabels annotates each cluster with its coverage ratio.
func (g *Game) drawClusterLabels(screen *ebiten.Image) {
	face := basicfont.Face7x13
	cell := float64(g.cfg.Building.CellSize)
	bounds := screen.Bounds()
	ox, oy := g.camera.Viewport(bounds.Dx(), bounds.Dy()).Origin()

	for _, cluster := range g.clusters.Clusters() {
		if len(cluster.Cells) == 0 {
			continue
		}
		anchor := cluster.Cells[0]
		for _, ck := range cluster.Cells[1:] {
			if ck.Y < anchor.Y || (ck.Y == anchor.Y && ck.X < anchor.X) {
				anchor = ck
			}
		}
		label := fmt.Sprintf("%d/%d", cluster.CoveredEdges, cluster.PerimeterEdges)
		labelColor := color.RGBA{230, 90, 90, 255}
		if cluster.Enclosed {
			labelColor = color.RGBA{120, 220, 120, 255}
		}
		x := int(float64(anchor.X)*cell - ox)
		y := int(float64(anchor.Y)*cell - oy)
		ebitext.Draw(screen, label, face, x+4, y+14, labelColor)
	}
}
