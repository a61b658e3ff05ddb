package session

const createSessionTable = `
CREATE TABLE IF NOT EXISTS sessions (
  name varchar primary key,
  size int not null,
  win int not null,
  board text not null,
  to_move text not null,
  over int not null,
  winner text not null,
  mode text not null,
  moves text not null,
  x_wins int not null default 0,
  o_wins int not null default 0,
  updated datetime
)`

const createResultTable = `
CREATE TABLE IF NOT EXISTS results (
  id integer primary key autoincrement,
  session varchar not null,
  time datetime,
  size int,
  win int,
  winner text,
  moves int
)`

const upsertSession = `
INSERT OR REPLACE INTO sessions
  (name, size, win, board, to_move, over, winner, mode, moves, x_wins, o_wins, updated)
VALUES
  (:name, :size, :win, :board, :to_move, :over, :winner, :mode, :moves, :x_wins, :o_wins, :updated)
`

const selectSession = `
SELECT name, size, win, board, to_move, over, winner, mode, moves, x_wins, o_wins, updated
FROM sessions WHERE name = ?
`

const deleteSession = `DELETE FROM sessions WHERE name = ?`

const listSessions = `SELECT name FROM sessions ORDER BY name`

const insertResult = `
INSERT INTO results (session, time, size, win, winner, moves)
VALUES (:session, :time, :size, :win, :winner, :moves)
`

const selectTally = `
SELECT winner, COUNT(*) AS games FROM results GROUP BY winner
`
