// Package graphica draws simple shapes (lines, rectangles, text, text boxes
// and images) into a window and tracks which of them the mouse is over or has
// clicked.
//
// Positions are given as Coord values, either absolute pixels (Px) or
// percentages of the window size (Pct), in one of five origin conventions.
// Each frame the program changes shape fields and calls Window.Update:
//
//	win, err := graphica.NewWindow(graphica.WithOrigin(graphica.OriginCenter))
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer win.Close()
//
//	button := graphica.NewRect(win, graphica.Pct(-10), graphica.Pct(5), graphica.Pct(10), graphica.Pct(-5), color.White, nil)
//	for win.Running() {
//		if button.Clicked {
//			button.Fill = color.RGBA{255, 0, 0, 255}
//		}
//		if err := win.Update(); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// The default driver renders into the terminal with bubbletea. NewHeadless
// provides a driver without a screen for tests and batch rendering.
package graphica
