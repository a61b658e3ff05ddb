package serve

import (
	"flag"
	"fmt"
	"log"
	"net"
	"sync"

	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/google/subcommands"
	"github.com/tictacgo/tictac/ai"
	"github.com/tictacgo/tictac/kinarow"
	"github.com/tictacgo/tictac/notation"
	"github.com/tictacgo/tictac/pb"
	"github.com/tictacgo/tictac/symmetry"
)

type Command struct {
	port       int
	exactLimit int
	seed       int64
	debug      int
}

func (*Command) Name() string     { return "serve" }
func (*Command) Synopsis() string { return "Serve engine RPCs via GRPC" }
func (*Command) Usage() string {
	return `serve [flags]

Serve the kinarow.Engine service (BestMove, Winner, Canonicalize).
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.port, "port", 55430, "bind port")
	flags.IntVar(&c.exactLimit, "exact-limit", 0, "largest board, in cells, searched exhaustively (0 = default)")
	flags.Int64Var(&c.seed, "seed", 0, "random seed (0 = from clock)")
	flags.IntVar(&c.debug, "debug", 0, "debug level")
}

// server answers each request on a board built from that request.
// The selector's random source is shared, so calls into it are
// serialized.
type server struct {
	sync.Mutex
	sel *ai.Selector
}

func newServer(cfg ai.SelectorConfig) *server {
	return &server{sel: ai.NewSelector(cfg)}
}

func parseBoard(board string, win int32) (*kinarow.Board, error) {
	b, err := notation.ParseBoard(board, int(win))
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "board: %v", err)
	}
	return b, nil
}

func (s *server) BestMove(ctx context.Context, req *pb.BestMoveRequest) (*pb.BestMoveResponse, error) {
	b, err := parseBoard(req.Board, req.Win)
	if err != nil {
		return nil, err
	}
	self := kinarow.X
	if b.Count(kinarow.X) > b.Count(kinarow.O) {
		self = kinarow.O
	}
	if req.Self != "" {
		if self, err = notation.ParseMark(req.Self); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "self: %v", err)
		}
	}

	s.Lock()
	m, kind := s.sel.BestMove(b, self)
	s.Unlock()

	return &pb.BestMoveResponse{
		Move:     notation.FormatMove(m),
		Row:      int32(m.Row),
		Col:      int32(m.Col),
		Strategy: kind.String(),
	}, nil
}

func (s *server) Winner(ctx context.Context, req *pb.WinnerRequest) (*pb.WinnerResponse, error) {
	b, err := parseBoard(req.Board, req.Win)
	if err != nil {
		return nil, err
	}
	return &pb.WinnerResponse{
		Winner: notation.FormatMark(b.Winner()),
		Full:   b.Full(),
	}, nil
}

func (s *server) Canonicalize(ctx context.Context, req *pb.CanonicalizeRequest) (*pb.CanonicalizeResponse, error) {
	b, err := parseBoard(req.Board, 0)
	if err != nil {
		return nil, err
	}
	c, _ := symmetry.Canonical(b)
	return &pb.CanonicalizeResponse{
		Board: notation.FormatBoard(c),
	}, nil
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log.Printf("Listening on port %d", c.port)
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", c.port))
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	grpcServer := grpc.NewServer()
	pb.RegisterEngineServer(grpcServer, newServer(ai.SelectorConfig{
		ExactLimit: c.exactLimit,
		Seed:       c.seed,
		Debug:      c.debug,
	}))

	go func() {
		<-ctx.Done()
		grpcServer.GracefulStop()
	}()
	if err := grpcServer.Serve(lis); err != nil {
		log.Printf("serve: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
