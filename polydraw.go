package gdi

import "image"

// ValidatePointTypes checks a PolyDraw point-type sequence. Every entry
// must be PTMoveTo, PTLineTo or PTLineTo|PTCloseFigure, except for runs of
// exactly three PTBezierTo entries, the last of which may also carry
// PTCloseFigure. Any other entry fails with ErrInvalidPointTypes.
func ValidatePointTypes(types []PointType) error {
	for i := 0; i < len(types); i++ {
		switch types[i] {
		case PTMoveTo, PTLineTo, PTLineTo | PTCloseFigure:
		case PTBezierTo:
			if i+2 < len(types) && types[i+1] == PTBezierTo && types[i+2]&^PTCloseFigure == PTBezierTo {
				i += 2
				continue
			}
			return ErrInvalidPointTypes
		default:
			return ErrInvalidPointTypes
		}
	}
	return nil
}

// figureStroker turns a validated tagged point sequence into polylines.
//
// It starts with an open figure holding only the anchor point. MoveTo
// strokes the open figure if it has at least two points and starts a new
// one. LineTo and Bezier runs extend the open figure, a close flag appends
// the figure's first point, and the end of input strokes what is left.
type figureStroker struct {
	dev  *Device
	flat Flattener

	line  []image.Point
	drawn bool
	last  image.Point
}

func strokeTagged(dev *Device, anchor image.Point, pts []image.Point, types []PointType, f Flattener) error {
	s := figureStroker{
		dev:  dev,
		flat: f,
		line: make([]image.Point, 1, len(pts)+1),
	}
	s.line[0] = anchor

	for i := 0; i < len(pts); i++ {
		switch types[i] &^ PTCloseFigure {
		case PTMoveTo:
			if err := s.flush(); err != nil {
				return err
			}
			s.line = []image.Point{pts[i]}
		case PTLineTo:
			s.line = append(s.line, pts[i])
		case PTBezierTo:
			q := []image.Point{s.line[len(s.line)-1], pts[i], pts[i+1], pts[i+2]}
			curve, err := s.flat.Flatten(q)
			if err != nil {
				return err
			}
			s.line = append(s.line, curve[1:]...)
			i += 2
		}
		if types[i]&PTCloseFigure != 0 {
			s.line = append(s.line, s.line[0])
		}
	}
	return s.flush()
}

// flush strokes the open figure. On failure the error reports the end of
// the last figure stroked by this sequence.
func (s *figureStroker) flush() error {
	if len(s.line) < 2 {
		return nil
	}
	if err := s.dev.Polyline(s.line); err != nil {
		return &StrokeError{Drawn: s.drawn, Last: s.last, Err: err}
	}
	s.drawn = true
	s.last = s.line[len(s.line)-1]
	return nil
}
