package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-chi/chi"
	"github.com/jessevdk/go-flags"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/amoredev/amore/internal/auth"
	"github.com/amoredev/amore/internal/fame"
	"github.com/amoredev/amore/internal/health"
	"github.com/amoredev/amore/internal/match"
	"github.com/amoredev/amore/internal/notifier"
	"github.com/amoredev/amore/internal/server"
	"github.com/amoredev/amore/internal/service"
	"github.com/amoredev/amore/internal/storage"
	graphstorage "github.com/amoredev/amore/internal/storage/neo4j"
	"github.com/amoredev/amore/internal/storage/postgres"
	"github.com/amoredev/amore/internal/storage/s3"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host           string        `long:"http.host" env:"HTTP_HOST" default:"localhost" description:"IP to listen on"`
	Port           int           `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on for insecure connections"`
	MaxBodySize    int64         `long:"http.max-body-size" env:"HTTP_MAX_BODY_SIZE" default:"8000000" description:"max request's body size"`
	ThrottlePeriod time.Duration `long:"http.throttle-period" env:"HTTP_THROTTLE_PERIOD" default:"1s" description:"cooldown between repeats of the same interaction"`

	AuthHost string `long:"auth.host" env:"AUTH_HOST" default:"http://localhost:8081" description:"identity service url"`

	Neo4jURI      string `long:"neo4j.uri" env:"NEO4J_URI" default:"bolt://localhost:7687" description:"neo4j uri"`
	Neo4jUser     string `long:"neo4j.user" env:"NEO4J_USER" default:"neo4j" description:"neo4j user"`
	Neo4jPassword string `long:"neo4j.password" env:"NEO4J_PASSWORD" default:"neo4j" description:"neo4j password"`

	DBOpts

	S3Endpoint        string `long:"s3.endpoint" env:"S3_ENDPOINT" default:"localhost:9000" description:"s3 endpoint"`
	S3Region          string `long:"s3.region" env:"S3_REGION" default:"" description:"s3 region"`
	S3AccessKeyID     string `long:"s3.access-key-id" env:"S3_ACCESS_KEY_ID" description:"access key id for S3 storage"`
	S3SecretAccessKey string `long:"s3.secret-access-key" env:"S3_SECRET_ACCESS_KEY" description:"secret access key for S3 storage"`
	S3UseSSL          bool   `long:"s3.use-ssl" env:"S3_USE_SSL" description:"use ssl for S3 storage connection"`
	S3Bucket          string `long:"s3.bucket" env:"S3_BUCKET" default:"amore" description:"S3 bucket for profile photos"`

	SQSOpts

	LikeDelta    int `long:"fame.like-delta" env:"FAME_LIKE_DELTA" default:"2" description:"fame rating change applied to the liked profile"`
	UnlikeDelta  int `long:"fame.unlike-delta" env:"FAME_UNLIKE_DELTA" default:"-2" description:"fame rating change applied to the unliked profile"`
	BlockDelta   int `long:"fame.block-delta" env:"FAME_BLOCK_DELTA" default:"-5" description:"fame rating change applied to the blocked profile"`
	UnblockDelta int `long:"fame.unblock-delta" env:"FAME_UNBLOCK_DELTA" default:"5" description:"fame rating change applied to the unblocked profile"`

	MaxTags             int           `long:"tags.max" env:"TAGS_MAX" default:"5" description:"maximal count of tags per profile"`
	PopularTagsMaxLimit int           `long:"tags.popular-max-limit" env:"TAGS_POPULAR_MAX_LIMIT" default:"50" description:"maximal limit for the popular tags request"`
	PopularTagsTTL      time.Duration `long:"tags.popular-ttl" env:"TAGS_POPULAR_TTL" default:"1m" description:"how long the popular tags response is cached"`

	LogLevel string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
}{}

var errTerminated = errors.New("terminated")

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Amore"
	parser.LongDescription = "Amore"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Warn("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	logrus.Info("service started")
	logrus.Infof("%+v", opts)

	r := chi.NewMux()

	graph := mustGetGraph()

	db := mustGetDB()
	notifications := postgres.New(db)

	photos := mustGetFileStorage()

	producer := mustGetProducer()

	svc := service.New(
		graph,
		notifications,
		photos,
		fame.New(graph),
		match.New(graph),
		notifier.New(notifications),
		producer,
		service.Config{
			LikeDelta:    opts.LikeDelta,
			UnlikeDelta:  opts.UnlikeDelta,
			BlockDelta:   opts.BlockDelta,
			UnblockDelta: opts.UnblockDelta,

			MaxTags:             opts.MaxTags,
			PopularTagsMaxLimit: opts.PopularTagsMaxLimit,
			PopularTagsTTL:      opts.PopularTagsTTL,
		},
	)

	server.SetupRouter(svc, auth.NewRemote(opts.AuthHost), r, opts.MaxBodySize, opts.ThrottlePeriod)
	health.SetupRouter(r, map[string]health.Pinger{
		"neo4j":    graph,
		"postgres": health.PingFunc(db.PingContext),
		"s3":       photos.(health.Pinger),
	})

	srv := http.Server{
		Addr:    fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler: r,
	}

	gr, _ := errgroup.WithContext(context.Background())
	gr.Go(srv.ListenAndServe)

	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		s := <-sigs

		logrus.Infof("terminating by %s signal", s)

		if err := srv.Shutdown(context.Background()); err != nil {
			logrus.WithError(err).Error("failed to gracefully shutdown server")
		}

		return errTerminated
	})

	logrus.Info("server started")

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithError(err).Fatal("service unexpectedly closed")
	}
}

func mustGetGraph() *graphstorage.Graph {
	driver, err := neo4j.NewDriverWithContext(opts.Neo4jURI,
		neo4j.BasicAuth(opts.Neo4jUser, opts.Neo4jPassword, ""))
	if err != nil {
		logrus.WithError(err).Fatal("failed to create neo4j driver")
	}

	graph := graphstorage.New(driver)

	if err := retry.Do(
		func() error { return graph.Ping(context.Background()) },
		retry.Attempts(10),
		retry.Delay(time.Second),
	); err != nil {
		logrus.WithError(err).Fatal("failed to connect to neo4j")
	}

	if err := graph.EnsureSchema(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ensure neo4j schema")
	}

	return graph
}

func mustGetFileStorage() storage.FileStorage {
	client, err := minio.New(opts.S3Endpoint, &minio.Options{
		Region: opts.S3Region,
		Creds:  credentials.NewStaticV4(opts.S3AccessKeyID, opts.S3SecretAccessKey, ""),
		Secure: opts.S3UseSSL,
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to S3 storage")
	}

	var fs storage.FileStorage
	if err := retry.Do(
		func() error {
			var err error
			fs, err = s3.NewStorage(client, opts.S3Bucket)
			return err
		},
		retry.Attempts(10),
		retry.Delay(time.Second),
	); err != nil {
		logrus.WithError(err).Fatal("failed to create file storage")
	}

	return fs
}
