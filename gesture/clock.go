package gesture

import "time"

// Clock supplies the time used for duration measurement and the long-press
// deadline. The recognizer only ever subtracts values from the same Clock,
// so any monotonic source works. NewRecognizer installs the system clock;
// tests inject their own via SetClock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
