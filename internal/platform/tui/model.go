package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-heist/internal/config"
	"github.com/vovakirdan/tui-heist/internal/core"
	"github.com/vovakirdan/tui-heist/internal/dungeon"
	"github.com/vovakirdan/tui-heist/internal/guard"
	"github.com/vovakirdan/tui-heist/internal/rng"
	"github.com/vovakirdan/tui-heist/internal/sim"
	"github.com/vovakirdan/tui-heist/internal/storage"
)

// sessionState tracks where the session is in the run flow.
type sessionState int

const (
	statePlaying sessionState = iota
	statePaused
	stateRunWon
	stateRunLost
)

// maxMessages caps the message log length.
const maxMessages = 6

// SessionModel is the Bubble Tea model for one heist play session. The
// simulation is turn-based, so the model advances purely on key input; there
// is no tick loop.
type SessionModel struct {
	cfg   config.HeistConfig
	dm    *config.DifficultyManager
	rt    core.RuntimeConfig
	store *storage.Store
	keys  KeyMap
	help  help.Model

	seedText   string
	runSeed    uint64
	floorIndex int
	sim        *sim.Sim
	screen     *core.Screen

	carryScore int // Score banked from cleared floors
	carryTurns int // Turns spent on cleared floors
	attempts   int // Generation attempts for the current floor

	state    sessionState
	messages []string
	genErr   error
	runSaved bool
	quitting bool
}

// NewSessionModel creates a session model for a fresh run.
func NewSessionModel(cfg config.HeistConfig, store *storage.Store, rt core.RuntimeConfig) SessionModel {
	seedText := rt.Seed
	if seedText == "" {
		seedText = fmt.Sprintf("%d", time.Now().UnixNano())
	}

	m := SessionModel{
		cfg:      cfg,
		dm:       config.NewDifficultyManager(cfg.Difficulty),
		rt:       rt,
		store:    store,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		seedText: seedText,
		runSeed:  rng.HashSeed(seedText),
	}
	m.startFloor()
	return m
}

// startFloor generates the current floor and hands it to a fresh simulation.
func (m *SessionModel) startFloor() {
	stream := rng.NewFloor(m.runSeed, m.floorIndex)
	params := m.cfg.GenParams(m.dm, m.floorIndex)

	res, err := dungeon.Generate(params, stream)
	if err != nil {
		m.genErr = err
		m.state = stateRunLost
		return
	}

	m.sim = sim.New(res, m.cfg.GuardTuning(m.dm, m.floorIndex), stream, m.runSeed, m.floorIndex)
	m.screen = core.NewScreen(res.Grid.W, res.Grid.H)
	m.attempts = res.Attempts
	m.pushMessage(fmt.Sprintf("Floor %d. Grab the loot and reach the exit.", m.floorIndex+1))
}

// restart begins a brand-new run on a fresh time-based seed.
func (m *SessionModel) restart() {
	m.seedText = fmt.Sprintf("%d", time.Now().UnixNano())
	m.runSeed = rng.HashSeed(m.seedText)
	m.floorIndex = 0
	m.carryScore = 0
	m.carryTurns = 0
	m.messages = nil
	m.genErr = nil
	m.runSaved = false
	m.state = statePlaying
	m.startFloor()
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.rt.ScreenW = msg.Width
		m.rt.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleKey processes one key press.
func (m SessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.saveRun(storage.OutcomeAbandoned)
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		if m.state == stateRunWon || m.state == stateRunLost {
			m.restart()
		}
		return m, nil

	case core.ActionPause:
		switch m.state {
		case statePlaying:
			m.state = statePaused
		case statePaused:
			m.state = statePlaying
		}
		return m, nil
	}

	if m.state != statePlaying || m.sim == nil {
		return m, nil
	}

	simAction, ok := simActionFor(action)
	if !ok {
		return m, nil
	}

	res, err := m.sim.Step(simAction)
	if err != nil {
		// Blocked moves cost nothing; just tell the player.
		if err == sim.ErrBlocked {
			m.pushMessage("Blocked.")
		}
		return m, nil
	}

	for _, ev := range res.Events {
		if text := eventMessage(ev); text != "" {
			m.pushMessage(text)
		}
	}

	switch res.Status {
	case sim.StatusWon:
		m.advanceFloor()
	case sim.StatusLost:
		m.state = stateRunLost
		m.saveRun(storage.OutcomeLost)
	}

	return m, nil
}

// advanceFloor banks the cleared floor and descends or finishes the run.
func (m *SessionModel) advanceFloor() {
	m.carryScore += m.sim.Score
	m.carryTurns += m.sim.Turn
	m.floorIndex++

	if m.floorIndex >= m.cfg.Rules.Floors {
		m.state = stateRunWon
		m.saveRun(storage.OutcomeWon)
		return
	}

	m.pushMessage("You slip down the stairwell.")
	m.startFloor()
}

// saveRun persists the run once, on its first terminal transition.
func (m *SessionModel) saveRun(outcome string) {
	if m.runSaved || m.store == nil {
		return
	}
	score := m.totalScore()
	if outcome == storage.OutcomeAbandoned && score == 0 {
		return
	}

	turns := m.carryTurns
	if m.sim != nil {
		turns += m.sim.Turn
	}
	//nolint:errcheck // Best-effort save, session continues regardless
	m.store.SaveRun(storage.RunRecord{
		Seed:    m.seedText,
		Floors:  m.floorIndex,
		Turns:   turns,
		Score:   score,
		Outcome: outcome,
	})
	m.runSaved = true
}

// totalScore returns banked score plus the current floor's score.
func (m SessionModel) totalScore() int {
	score := m.carryScore
	if m.sim != nil && m.state != stateRunWon {
		score += m.sim.Score
	}
	return score
}

// pushMessage appends to the message log, trimming old entries.
func (m *SessionModel) pushMessage(text string) {
	m.messages = append(m.messages, text)
	if len(m.messages) > maxMessages {
		m.messages = m.messages[len(m.messages)-maxMessages:]
	}
}

// View renders the current session state.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.genErr != nil {
		return fmt.Sprintf("Could not generate a floor: %v\n\nPress r for a new run, q to quit.\n", m.genErr)
	}
	return renderSession(m)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}

// simActionFor maps a semantic input action to a simulation action.
func simActionFor(a core.Action) (sim.Action, bool) {
	switch a {
	case core.ActionMoveUp:
		return sim.Move(dungeon.DirUp), true
	case core.ActionMoveDown:
		return sim.Move(dungeon.DirDown), true
	case core.ActionMoveLeft:
		return sim.Move(dungeon.DirLeft), true
	case core.ActionMoveRight:
		return sim.Move(dungeon.DirRight), true
	case core.ActionWait:
		return sim.Wait(), true
	case core.ActionInteract:
		return sim.Interact(), true
	}
	return sim.Action{}, false
}

// eventMessage renders a simulation event as a log line. Returns "" for
// events that should stay silent.
func eventMessage(ev sim.Event) string {
	switch ev := ev.(type) {
	case sim.PickupCollectedEvent:
		if ev.Item == dungeon.ItemObjective {
			return "Objective secured!"
		}
		return "Picked up a keycard."
	case sim.DoorOpenedEvent:
		return "The door slides open."
	case sim.HazardTriggeredEvent:
		if ev.Alerted > 0 {
			return fmt.Sprintf("An alarm blares! %d guard(s) move to investigate.", ev.Alerted)
		}
		return "An alarm blares, but nobody is close enough to hear."
	case sim.GuardStateEvent:
		switch ev.To {
		case guard.StateAlert:
			return "A guard turns toward you."
		case guard.StateChase:
			return "A guard gives chase!"
		case guard.StatePatrol:
			return "A guard loses interest."
		}
	case sim.FloorWonEvent:
		return "Floor cleared!"
	case sim.FloorLostEvent:
		return "You were caught."
	case sim.WarningEvent:
		return ev.Message
	}
	return ""
}

// Run starts a standalone Bubble Tea program for one play session.
func Run(cfg config.HeistConfig, store *storage.Store, rt core.RuntimeConfig) error {
	model := NewSessionModel(cfg, store, rt)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
