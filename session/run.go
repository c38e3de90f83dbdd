package session

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/blockgame/input"
	"github.com/oomph-ac/blockgame/oerror"
	"github.com/oomph-ac/blockgame/render"
)

// Run runs a tick and draws a frame at the configured tick rate until ctx is cancelled or src asks
// to quit. It returns nil if src asked to quit and ctx.Err() if ctx was cancelled. A panic during a
// tick is reported to Sentry and returned as an *oerror.PanicError.
func (s *Session) Run(ctx context.Context, src input.Source, r render.Renderer) error {
	ticker := time.NewTicker(time.Second / time.Duration(s.conf.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		f := src.Poll()
		if f.Quit {
			s.log.WithField("ticks", s.tick).Info("session ended")
			return nil
		}
		if err := s.step(f, r); err != nil {
			return err
		}
	}
}

// step runs one tick and draws it, recovering from panics.
func (s *Session) step(f input.Frame, r render.Renderer) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = oerror.NewPanicError(s.tick, v)
			s.log.Errorf("tick panic: %v", v)

			hub := sentry.CurrentHub().Clone()
			hub.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetTag("session", s.id.String())
			})
			hub.Recover(err)
			hub.Flush(time.Second * 5)
		}
	}()

	start := time.Now()
	s.Tick(f)
	render.Frame(r, s.View(), s.world)
	s.conf.Metrics.Tick(time.Since(start))
	return nil
}
