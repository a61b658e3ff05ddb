package session

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // store assumes sqlite

	"github.com/tictacgo/tictac/game"
	"github.com/tictacgo/tictac/kinarow"
	"github.com/tictacgo/tictac/notation"
)

var ErrNotFound = errors.New("session not found")

// Store keeps saved games and finished-game results in a sqlite
// database.
type Store struct {
	db *sqlx.DB
}

type sessionRow struct {
	Name    string    `db:"name"`
	Size    int       `db:"size"`
	Win     int       `db:"win"`
	Board   string    `db:"board"`
	ToMove  string    `db:"to_move"`
	Over    bool      `db:"over"`
	Winner  string    `db:"winner"`
	Mode    string    `db:"mode"`
	Moves   string    `db:"moves"`
	XWins   int       `db:"x_wins"`
	OWins   int       `db:"o_wins"`
	Updated time.Time `db:"updated"`
}

type resultRow struct {
	Session string    `db:"session"`
	Time    time.Time `db:"time"`
	Size    int       `db:"size"`
	Win     int       `db:"win"`
	Winner  string    `db:"winner"`
	Moves   int       `db:"moves"`
}

// Tally counts finished games by result.
type Tally struct {
	X, O, Draws int
}

func (t Tally) Games() int {
	return t.X + t.O + t.Draws
}

func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// a single connection keeps ":memory:" databases coherent
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(createSessionTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create sessions table: %w", err)
	}
	if _, err := db.Exec(createResultTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create results table: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes g under name, replacing any earlier save.
func (s *Store) Save(name string, g *game.Game) error {
	cfg := g.Board.Config()
	row := sessionRow{
		Name:    name,
		Size:    cfg.Size,
		Win:     cfg.Win,
		Board:   notation.FormatBoard(g.Board),
		ToMove:  notation.FormatMark(g.ToMove),
		Over:    g.Over,
		Winner:  notation.FormatMark(g.Winner),
		Mode:    g.Mode.String(),
		Moves:   notation.FormatMoves(g.Moves),
		XWins:   g.XWins,
		OWins:   g.OWins,
		Updated: time.Now().UTC(),
	}
	if _, err := s.db.NamedExec(upsertSession, &row); err != nil {
		return fmt.Errorf("save %q: %w", name, err)
	}
	return nil
}

func (s *Store) Load(name string) (*game.Game, error) {
	var row sessionRow
	err := s.db.Get(&row, selectSession, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", name, err)
	}
	return row.game()
}

func (r *sessionRow) game() (*game.Game, error) {
	b, err := notation.ParseBoard(r.Board, r.Win)
	if err != nil {
		return nil, fmt.Errorf("session %q: board: %w", r.Name, err)
	}
	if b.Size() != r.Size {
		return nil, fmt.Errorf("session %q: board size %d, recorded %d", r.Name, b.Size(), r.Size)
	}
	toMove, err := notation.ParseMark(r.ToMove)
	if err != nil {
		return nil, fmt.Errorf("session %q: to move: %w", r.Name, err)
	}
	mode, err := game.ParseMode(r.Mode)
	if err != nil {
		return nil, fmt.Errorf("session %q: %w", r.Name, err)
	}
	moves, err := notation.ParseMoves(r.Moves)
	if err != nil {
		return nil, fmt.Errorf("session %q: moves: %w", r.Name, err)
	}
	winner := kinarow.Empty
	if r.Winner != notation.FormatMark(kinarow.Empty) {
		if winner, err = notation.ParseMark(r.Winner); err != nil {
			return nil, fmt.Errorf("session %q: winner: %w", r.Name, err)
		}
	}
	return &game.Game{
		Board:  b,
		ToMove: toMove,
		Over:   r.Over,
		Winner: winner,
		Mode:   mode,
		Moves:  moves,
		XWins:  r.XWins,
		OWins:  r.OWins,
	}, nil
}

func (s *Store) Delete(name string) error {
	res, err := s.db.Exec(deleteSession, name)
	if err != nil {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) List() ([]string, error) {
	var names []string
	if err := s.db.Select(&names, listSessions); err != nil {
		return nil, err
	}
	return names, nil
}

// RecordResult appends the outcome of the finished game g.
func (s *Store) RecordResult(name string, g *game.Game) error {
	if !g.Over {
		return fmt.Errorf("record %q: game is not over", name)
	}
	_, err := s.db.NamedExec(insertResult, newResultRow(name, g))
	return err
}

func newResultRow(name string, g *game.Game) *resultRow {
	return &resultRow{
		Session: name,
		Time:    time.Now().UTC(),
		Size:    g.Board.Size(),
		Win:     g.Board.Win(),
		Winner:  notation.FormatMark(g.Winner),
		Moves:   len(g.Moves),
	}
}

// RecordResults appends several results in one transaction.
func (s *Store) RecordResults(name string, gs []*game.Game) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	for _, g := range gs {
		if !g.Over {
			return fmt.Errorf("record %q: game is not over", name)
		}
		if _, err := tx.NamedExec(insertResult, newResultRow(name, g)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Store) Tally() (Tally, error) {
	var rows []struct {
		Winner string `db:"winner"`
		Games  int    `db:"games"`
	}
	var t Tally
	if err := s.db.Select(&rows, selectTally); err != nil {
		return t, err
	}
	for _, r := range rows {
		switch r.Winner {
		case notation.FormatMark(kinarow.X):
			t.X = r.Games
		case notation.FormatMark(kinarow.O):
			t.O = r.Games
		default:
			t.Draws += r.Games
		}
	}
	return t, nil
}
