package store

import (
	"fmt"
	"strconv"

	"github.com/danmuck/kvadmin/internal/console"
)

func usage(text string) error {
	return fmt.Errorf("usage: %s", text)
}

// Commands is the registration table for the console: one triple per
// exposed operation. Exclusion and remap policy live in the console,
// not here; this list is the full surface of the connection.
func (s *Store) Commands() []console.Command {
	return []console.Command{
		{
			Name: "set",
			Help: "Set key to hold the string value.",
			Run: func(args ...string) (console.Result, error) {
				if len(args) != 2 {
					return console.Result{}, usage("set <key> <value>")
				}
				s.Set(args[0], args[1])
				return console.Text("OK"), nil
			},
		},
		{
			Name: "get",
			Help: "Get the value of key.",
			Run: func(args ...string) (console.Result, error) {
				if len(args) != 1 {
					return console.Result{}, usage("get <key>")
				}
				value, err := s.Get(args[0])
				if err != nil {
					return console.Result{}, err
				}
				return console.Text(value), nil
			},
		},
		{
			Name: "delete",
			Help: "Remove the specified keys, reporting how many existed.",
			Run: func(args ...string) (console.Result, error) {
				if len(args) == 0 {
					return console.Result{}, usage("delete <key> [key ...]")
				}
				return console.Text(strconv.Itoa(s.Delete(args...))), nil
			},
		},
		{
			Name: "exists",
			Help: "Determine whether key exists.",
			Run: func(args ...string) (console.Result, error) {
				if len(args) != 1 {
					return console.Result{}, usage("exists <key>")
				}
				return console.Bool(s.Exists(args[0])), nil
			},
		},
		{
			Name: "keys",
			Help: "List all keys matching the glob pattern.",
			Run: func(args ...string) (console.Result, error) {
				if len(args) != 1 {
					return console.Result{}, usage("keys <pattern>")
				}
				keys, err := s.Keys(args[0])
				if err != nil {
					return console.Result{}, err
				}
				return console.Sequence(keys), nil
			},
		},
		{
			Name: "type",
			Help: "Report the type stored at key.",
			Run: func(args ...string) (console.Result, error) {
				if len(args) != 1 {
					return console.Result{}, usage("type <key>")
				}
				kind, err := s.Type(args[0])
				if err != nil {
					return console.Result{}, err
				}
				return console.Text(kind), nil
			},
		},
		{
			Name: "ttl",
			Help: "Remaining seconds before key expires; -1 without expiry, -2 when missing.",
			Run: func(args ...string) (console.Result, error) {
				if len(args) != 1 {
					return console.Result{}, usage("ttl <key>")
				}
				return console.Text(strconv.FormatInt(s.TTL(args[0]), 10)), nil
			},
		},
		{
			Name: "expire",
			Help: "Set a timeout in seconds on key.",
			Run: func(args ...string) (console.Result, error) {
				if len(args) != 2 {
					return console.Result{}, usage("expire <key> <seconds>")
				}
				seconds, err := strconv.ParseInt(args[1], 10, 64)
				if err != nil {
					return console.Result{}, fmt.Errorf("seconds must be an integer: %q", args[1])
				}
				return console.Bool(s.Expire(args[0], seconds)), nil
			},
		},
		{
			Name: "persist",
			Help: "Remove the timeout on key.",
			Run: func(args ...string) (console.Result, error) {
				if len(args) != 1 {
					return console.Result{}, usage("persist <key>")
				}
				return console.Bool(s.Persist(args[0])), nil
			},
		},
		{
			Name: "incr",
			Help: "Increment the integer value of key by one.",
			Run: func(args ...string) (console.Result, error) {
				if len(args) != 1 {
					return console.Result{}, usage("incr <key>")
				}
				n, err := s.IncrBy(args[0], 1)
				if err != nil {
					return console.Result{}, err
				}
				return console.Text(strconv.FormatInt(n, 10)), nil
			},
		},
		{
			Name: "decr",
			Help: "Decrement the integer value of key by one.",
			Run: func(args ...string) (console.Result, error) {
				if len(args) != 1 {
					return console.Result{}, usage("decr <key>")
				}
				n, err := s.IncrBy(args[0], -1)
				if err != nil {
					return console.Result{}, err
				}
				return console.Text(strconv.FormatInt(n, 10)), nil
			},
		},
		{
			Name: "append",
			Help: "Append value to key and report the new length.",
			Run: func(args ...string) (console.Result, error) {
				if len(args) != 2 {
					return console.Result{}, usage("append <key> <value>")
				}
				return console.Text(strconv.Itoa(s.Append(args[0], args[1]))), nil
			},
		},
		{
			Name: "strlen",
			Help: "Length of the value stored at key.",
			Run: func(args ...string) (console.Result, error) {
				if len(args) != 1 {
					return console.Result{}, usage("strlen <key>")
				}
				return console.Text(strconv.Itoa(s.Strlen(args[0]))), nil
			},
		},
		{
			Name: "rename",
			Help: "Rename key to newkey.",
			Run: func(args ...string) (console.Result, error) {
				if len(args) != 2 {
					return console.Result{}, usage("rename <key> <newkey>")
				}
				if err := s.Rename(args[0], args[1]); err != nil {
					return console.Result{}, err
				}
				return console.Text("OK"), nil
			},
		},
		{
			Name: "randomkey",
			Run: func(args ...string) (console.Result, error) {
				if len(args) != 0 {
					return console.Result{}, usage("randomkey")
				}
				key, err := s.RandomKey()
				if err != nil {
					return console.Result{}, err
				}
				return console.Text(key), nil
			},
		},
		{
			Name: "dbsize",
			Help: "Number of live keys in the store.",
			Run: func(args ...string) (console.Result, error) {
				if len(args) != 0 {
					return console.Result{}, usage("dbsize")
				}
				return console.Text(strconv.Itoa(s.DBSize())), nil
			},
		},
		{
			Name: "flushall",
			Help: "Remove every key from the store.",
			Run: func(args ...string) (console.Result, error) {
				if len(args) != 0 {
					return console.Result{}, usage("flushall")
				}
				s.FlushAll()
				return console.Text("OK"), nil
			},
		},
		{
			Name: "dump",
			Help: "Return the raw bytes stored at key.",
			Run: func(args ...string) (console.Result, error) {
				if len(args) != 1 {
					return console.Result{}, usage("dump <key>")
				}
				raw, err := s.Dump(args[0])
				if err != nil {
					return console.Result{}, err
				}
				return console.Bytes(raw), nil
			},
		},
		{
			Name: "info",
			Help: "Counters describing the store contents.",
			Run: func(args ...string) (console.Result, error) {
				if len(args) != 0 {
					return console.Result{}, usage("info")
				}
				return console.Mapping(s.Info()), nil
			},
		},
		{
			Name: "ping",
			Help: "Ping the store connection.",
			Run: func(args ...string) (console.Result, error) {
				switch len(args) {
				case 0:
					return console.Text("PONG"), nil
				case 1:
					return console.Text(args[0]), nil
				default:
					return console.Result{}, usage("ping [message]")
				}
			},
		},
		{
			Name: "echo",
			Run: func(args ...string) (console.Result, error) {
				if len(args) != 1 {
					return console.Result{}, usage("echo <message>")
				}
				return console.Text(args[0]), nil
			},
		},
		{
			Name: "channels",
			Help: "Channels with at least one subscriber.",
			Run: func(args ...string) (console.Result, error) {
				if len(args) != 0 {
					return console.Result{}, usage("channels")
				}
				return console.Set(s.Channels()), nil
			},
		},
		{
			Name: "subscribe",
			Help: "Register interest in a channel.",
			Run: func(args ...string) (console.Result, error) {
				if len(args) != 1 {
					return console.Result{}, usage("subscribe <channel>")
				}
				return console.Text(strconv.Itoa(s.Subscribe(args[0]))), nil
			},
		},
		{
			Name: "publish",
			Help: "Report how many subscribers a message would reach.",
			Run: func(args ...string) (console.Result, error) {
				if len(args) != 2 {
					return console.Result{}, usage("publish <channel> <message>")
				}
				return console.Text(strconv.Itoa(s.Publish(args[0], args[1]))), nil
			},
		},
		{
			Name: "fromurl",
			Help: "Open a new connection from a URL.",
			Run: func(args ...string) (console.Result, error) {
				if len(args) != 1 {
					return console.Result{}, usage("fromurl <url>")
				}
				return console.Result{}, s.FromURL(args[0])
			},
		},
	}
}
