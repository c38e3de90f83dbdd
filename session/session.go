package session

import (
	"fmt"
	"io"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/oomph-ac/blockgame/game"
	"github.com/oomph-ac/blockgame/hotbar"
	"github.com/oomph-ac/blockgame/input"
	"github.com/oomph-ac/blockgame/metrics"
	"github.com/oomph-ac/blockgame/player"
	"github.com/oomph-ac/blockgame/render"
	"github.com/oomph-ac/blockgame/utils"
	"github.com/oomph-ac/blockgame/world"
	"github.com/sirupsen/logrus"
)

// Session owns a world, the player in it and its hotbar, and advances them one tick at a time.
//
// A Session is not safe for concurrent use: Tick, View and Run must be called from one goroutine.
type Session struct {
	id  uuid.UUID
	log *logrus.Entry

	conf    Config
	world   *world.World
	player  *player.Player
	hotbar  *hotbar.Hotbar
	handler Handler

	tick uint64
	last player.InteractionResult
}

// New creates a session from the config passed. The player spawns on top of the ground of the
// configured spawn column.
func New(conf Config) *Session {
	conf = conf.withDefaults()

	id := uuid.New()
	log := conf.Log.WithField("session", id.String())

	w := conf.World
	spawn := mgl32.Vec3{conf.SpawnX, w.GroundHeight(conf.SpawnX, conf.SpawnZ) + game.EyeHeight, conf.SpawnZ}

	s := &Session{
		id:      id,
		log:     log,
		conf:    conf,
		world:   w,
		player:  player.New(w, spawn, conf.PlayerOpts, conf.Log),
		hotbar:  hotbar.New(),
		handler: NopHandler{},
	}
	log.WithFields(logrus.Fields{
		"spawn":  spawn,
		"digest": w.Digest(),
	}).Info("session started")
	return s
}

// ID returns the unique ID of the session.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// World returns the world of the session.
func (s *Session) World() *world.World {
	return s.world
}

// Player returns the player of the session.
func (s *Session) Player() *player.Player {
	return s.player
}

// Hotbar returns the hotbar of the player.
func (s *Session) Hotbar() *hotbar.Hotbar {
	return s.hotbar
}

// Ticks returns the number of ticks run so far.
func (s *Session) Ticks() uint64 {
	return s.tick
}

// Handle sets the handler of the session. A nil handler resets it to a NopHandler.
func (s *Session) Handle(h Handler) {
	if h == nil {
		h = NopHandler{}
	}
	s.handler = h
}

// Tick advances the session by one tick using the input passed. Input is applied first, followed by
// gravity, stuck recovery and finally breaking and placing.
func (s *Session) Tick(f input.Frame) {
	p := s.player

	if f.Select != input.NoSlot {
		s.hotbar.Select(f.Select)
	}
	if f.Scroll != 0 {
		s.hotbar.Scroll(f.Scroll)
	}

	p.AddYaw(f.LookX * s.conf.MouseSensitivity)
	p.AddPitch(-f.LookY * s.conf.MouseSensitivity)

	s.walk(f.Move)
	if f.Jump {
		p.Jump(s.conf.JumpImpulse)
	}
	p.Tick()

	from := p.Position()
	if r := p.CheckAndFixStuckInBlock(); r != player.RecoveryNone {
		s.conf.Metrics.Recovered(r.String())
		s.handler.HandleRecovery(r, from, p.Position())
	}

	res := p.Interact(s.conf.Clock.Now(), f.Break, f.Place, s.hotbar.Selected())
	if res.Broke {
		s.conf.Metrics.Broke()
		s.handler.HandleBreak(res.BrokePos, res.BrokeType)
	}
	if res.Placed {
		s.conf.Metrics.Placed()
		s.handler.HandlePlace(res.PlacedPos, res.PlacedType)
	}
	s.last = res
	s.tick++

	if res.Broke || res.Placed {
		s.log.WithField("state", utils.OrderedMapToString(s.debugState())).Debug("world changed")
	}
}

// walk moves the player once for every active movement key, in the order forward, back, left and
// right. Each move covers the distance walked in one tick.
func (s *Session) walk(keys input.MoveKey) {
	if keys == 0 {
		return
	}
	dist := s.conf.MoveSpeed / float32(s.conf.TickRate)
	forward, right := game.HorizontalDirections(s.player.Yaw())

	for _, m := range [...]struct {
		key input.MoveKey
		dir mgl32.Vec2
	}{
		{input.Forward, forward},
		{input.Back, forward.Mul(-1)},
		{input.Left, right.Mul(-1)},
		{input.Right, right},
	} {
		if keys.Has(m.key) {
			s.player.Move(m.dir.X()*dist, m.dir.Y()*dist)
		}
	}
}

// View returns the state of the session for drawing a frame.
func (s *Session) View() render.View {
	p := s.player
	return render.View{
		Tick:      s.tick,
		Eye:       p.Position(),
		Yaw:       p.Yaw(),
		Pitch:     p.Pitch(),
		VelocityY: p.VelocityY(),
		OnGround:  p.OnGround(),
		Target:    s.last.Ray,
		Hotbar:    s.hotbar.Slots(),
		Selected:  s.hotbar.SelectedSlot(),
		Debug:     utils.OrderedMapToString(s.debugState()),
	}
}

func (s *Session) debugState() *orderedmap.OrderedMap[string, any] {
	p := s.player
	pos := p.Position()

	data := orderedmap.NewOrderedMap[string, any]()
	data.Set("tick", s.tick)
	data.Set("pos", fmt.Sprintf("%.2f,%.2f,%.2f", pos.X(), pos.Y(), pos.Z()))
	data.Set("rot", fmt.Sprintf("%.1f,%.1f", p.Yaw(), p.Pitch()))
	data.Set("vy", game.Round32(p.VelocityY(), 3))
	data.Set("ground", p.OnGround())
	data.Set("slot", fmt.Sprintf("%d:%s", s.hotbar.SelectedSlot()+1, s.hotbar.Selected()))
	if ray := s.last.Ray; ray.Hit {
		data.Set("target", fmt.Sprintf("%d,%d,%d", ray.Target.X(), ray.Target.Y(), ray.Target.Z()))
	} else {
		data.Set("target", "none")
	}
	return data
}

// Config holds everything needed to create a Session. Zero values are replaced with their defaults.
type Config struct {
	// World is the world the session runs in. A flat world is created if it is nil.
	World *world.World
	// SpawnX and SpawnZ are the world space column the player spawns in.
	SpawnX, SpawnZ float32

	PlayerOpts       player.Opts
	JumpImpulse      float32
	MoveSpeed        float32
	MouseSensitivity float32
	TickRate         int

	// Clock is used for break and place cooldowns. A SystemClock is used if it is nil.
	Clock Clock
	// Metrics may be nil.
	Metrics *metrics.Metrics
	// Log is the logger of the session. Output is discarded if it is nil.
	Log *logrus.Logger
}

func (conf Config) withDefaults() Config {
	if conf.Log == nil {
		conf.Log = logrus.New()
		conf.Log.SetOutput(io.Discard)
	}
	if conf.World == nil {
		conf.World = world.New(world.FlatGenerator{}, conf.Log)
	}
	if conf.JumpImpulse <= 0 {
		conf.JumpImpulse = game.DefaultJumpImpulse
	}
	if conf.MoveSpeed <= 0 {
		conf.MoveSpeed = game.DefaultMoveSpeed
	}
	if conf.MouseSensitivity <= 0 {
		conf.MouseSensitivity = game.DefaultMouseSensitivity
	}
	if conf.TickRate <= 0 {
		conf.TickRate = game.DefaultTickRate
	}
	if conf.Clock == nil {
		conf.Clock = NewSystemClock()
	}
	return conf
}
