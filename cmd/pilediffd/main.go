// Command pilediffd serves the paste-hosting HTTP frontend: upload two
// files, get back a link to their diff.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pilediff/pilediff/pkg/diffapi"
	"github.com/pilediff/pilediff/pkg/pastedb"
	"github.com/pilediff/pilediff/pkg/storage"
	"go.etcd.io/bbolt"
)

type optsType struct {
	listenAddr     string
	publicURL      string
	dbFile         string
	cacheMaxBytes  uint64
	s3Endpoint     string
	s3AccessKey    string
	s3AccessSecret string
	s3Bucket       string
}

func defaultEnv(s, def string) string {
	v, ok := os.LookupEnv(s)
	if ok {
		return v
	}
	return def
}

func stringVar(p *string, fg, defaultValue, usage string) {
	ev := strings.ReplaceAll(strings.ToUpper(fg), "-", "_")
	flag.StringVar(p, fg, defaultEnv(ev, defaultValue), usage+". env var: "+ev)
}

func main() {
	var opts optsType
	stringVar(&opts.listenAddr, "listen-addr", ":18844", "listen address for the web server")
	stringVar(&opts.publicURL, "public-url", "http://localhost:18844", "url for the server, used in the curl example")
	stringVar(&opts.dbFile, "db-file", "data/db.bolt", "the file used for the database. "+
		"this will be a cache (if used together with s3) or the permanent database")
	stringVar(&opts.s3Endpoint, "s3-endpoint", "", "s3 endpoint; when set, uploads are stored in s3 and db-file is used as a local cache")
	stringVar(&opts.s3AccessKey, "s3-access-key", "", "s3 access key")
	stringVar(&opts.s3AccessSecret, "s3-access-secret", "", "s3 access secret")
	stringVar(&opts.s3Bucket, "s3-bucket", "", "s3 bucket")
	flag.Uint64Var(&opts.cacheMaxBytes, "cache-max-bytes", 256<<20, "maximum size of the local cache, when using s3 storage")
	flag.Parse()

	bdb, err := bbolt.Open(opts.dbFile, 0o600, nil)
	if err != nil {
		panic(fmt.Errorf("db open error: %w", err))
	}

	st, err := buildStorage(bdb, opts)
	if err != nil {
		panic(fmt.Errorf("storage init error: %w", err))
	}

	srv := &diffapi.Server{
		PublicURL: opts.publicURL,
		Storage:   st,
		DB:        &pastedb.DB{DB: bdb},
		Output:    os.Stdout,
	}

	fmt.Println("listening on", opts.listenAddr)
	panic(http.ListenAndServe(opts.listenAddr, recoverMiddleware(srv.Router())))
}

func buildStorage(bdb *bbolt.DB, opts optsType) (storage.Storage, error) {
	if opts.s3Endpoint == "" {
		return storage.NewDBStorage(bdb, []byte("storage")), nil
	}

	minioClient, err := minio.New(opts.s3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.s3AccessKey, opts.s3AccessSecret, ""),
		Secure: true,
	})
	if err != nil {
		return nil, fmt.Errorf("minio init error: %w", err)
	}

	permanent := storage.NewMinioStorage(minioClient, opts.s3Bucket)
	cache := storage.NewDBStorage(bdb, []byte("cache"))
	return storage.NewCachedStorage(cache, permanent, opts.cacheMaxBytes)
}

// recoverMiddleware is a last-resort safety net around the whole
// server, logging a compact stack trace for anything that slips past
// chi's own Recoverer (eg. a panic in the middleware that runs before
// Recoverer in the chain).
func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				fmt.Fprintf(os.Stderr, "panic handling %s %s: %v\n%s", r.Method, r.URL.Path, err, smallStacktrace())
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("internal server error"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
