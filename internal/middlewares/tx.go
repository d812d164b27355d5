package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-trip-planner/internal/logger"
)

// TxMiddleware runs the handler inside a database transaction.
// The response is held until the transaction ends: a handler status below 400
// commits, anything else rolls back. A failed commit answers 500.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				writeMessage(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			hooks := &commitHooks{}
			ctx := context.WithValue(setTxToContext(r.Context(), tx), hooksKey, hooks)

			bw := &bufferedWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(bw, r.WithContext(ctx))

			if bw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				bw.flush()
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				writeMessage(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			for _, fn := range hooks.fns {
				fn(r.Context())
			}
			bw.flush()
		})
	}
}

// bufferedWriter delays the status line and body until flush.
type bufferedWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.statusCode = code
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	return bw.body.Write(b)
}

func (bw *bufferedWriter) flush() {
	bw.ResponseWriter.WriteHeader(bw.statusCode)
	bw.ResponseWriter.Write(bw.body.Bytes())
}

type commitHooks struct {
	fns []func(ctx context.Context)
}

type hooksKeyType struct{}

var hooksKey = hooksKeyType{}

// AfterCommit registers fn to run once the request transaction in ctx has
// committed. Hooks are dropped on rollback. It returns false when ctx was not
// prepared by TxMiddleware.
func AfterCommit(ctx context.Context, fn func(ctx context.Context)) bool {
	hooks, ok := ctx.Value(hooksKey).(*commitHooks)
	if !ok {
		return false
	}
	hooks.fns = append(hooks.fns, fn)
	return true
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
