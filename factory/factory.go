package factory

import (
	"context"
	"sync"

	"niteout-backend/config"
	"niteout-backend/logger"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"github.com/go-redis/redis"
	"github.com/spf13/viper"
	"google.golang.org/api/option"
)

var fa sync.Once
var fs sync.Once
var rd sync.Once

// Factory hands out the process-wide clients. Handlers take a Factory so
// tests can substitute fakes.
type Factory interface {
	FirebaseApp(ctx context.Context) *firebase.App
	Firestore(ctx context.Context) *firestore.Client
	Redis(ctx context.Context) *redis.Client
}

type factory struct {
	app       *firebase.App
	firestore *firestore.Client
	redis     *redis.Client
}

func NewFactory() Factory {
	return &factory{}
}

func (f *factory) FirebaseApp(ctx context.Context) *firebase.App {
	fa.Do(func() {
		opt := option.WithCredentialsFile(viper.GetString(config.FirebaseServiceAccountKeyPath))
		app, err := firebase.NewApp(context.Background(), nil, opt)
		if err != nil {
			logger.Fatalf(ctx, "firebaseApp: error initializing firebase app: %+v", err)
		}

		f.app = app
	})

	return f.app
}

func (f *factory) Firestore(ctx context.Context) *firestore.Client {
	fs.Do(func() {
		client, err := f.FirebaseApp(ctx).Firestore(context.Background())
		if err != nil {
			logger.Fatalf(ctx, "firestore: error initializing firestore client: %+v", err)
		}

		f.firestore = client
	})

	return f.firestore
}

func (f *factory) Redis(ctx context.Context) *redis.Client {
	rd.Do(func() {
		client := redis.NewClient(&redis.Options{
			Addr:     viper.GetString(config.RedisAddress),
			Password: viper.GetString(config.RedisPassword),
			DB:       viper.GetInt(config.RedisDB),
		})

		if err := client.Ping().Err(); err != nil {
			logger.Fatalf(ctx, "redis: could not establish connection: %+v", err)
		}

		f.redis = client
	})

	return f.redis
}
