package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/toon-format/toon-go"
)

var (
	log       *WriteDaily
	errorsLog *WriteDaily
	eventsLog *WriteDaily

	// if true, Verbosef() will log messages
	Verbose bool

	// where Logf() prints, in addition to log files
	Output io.Writer = os.Stdout
)

type WriteDaily struct {
	Dir         string
	currentDate int // YYYYMMDD format
	file        *os.File
	mu          sync.Mutex
}

func NewWriteDaily(dir string) *WriteDaily {
	return &WriteDaily{
		Dir: dir,
	}
}

// dayFromTime converts a time.Time to YYYYMMDD integer format
func dayFromTime(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// PathForTime returns path of the log file for a given day
func (w *WriteDaily) PathForTime(t time.Time) string {
	dateStr := t.UTC().Format("2006-01-02")
	return filepath.Join(w.Dir, dateStr+".txt")
}

// Writer returns an io.Writer for today's log file
// it creates a new file if needed
func (w *WriteDaily) Writer() (io.Writer, error) {
	if w == nil {
		return nil, fmt.Errorf("w is nil")
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now().UTC()
	today := dayFromTime(now)

	if w.file != nil && w.currentDate != today {
		if err := w.close(); err != nil {
			return nil, err
		}
	}

	if w.file == nil {
		if err := os.MkdirAll(w.Dir, 0755); err != nil {
			return nil, err
		}
		path := w.PathForTime(now)
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		w.file = f
		w.currentDate = today
	}
	return w.file, nil
}

// Write writes data to the daily log file
// it's safe to call on nil receiver
func (w *WriteDaily) Write(d []byte) error {
	if w == nil {
		return nil
	}
	wr, err := w.Writer()
	if err != nil {
		return err
	}
	_, err = wr.Write(d)
	return err
}

// WriteString writes a string to the daily log file
// it's safe to call on nil receiver
func (w *WriteDaily) WriteString(s string) error {
	return w.Write([]byte(s))
}

func (w *WriteDaily) close() error {
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	w.currentDate = 0
	return err
}

// Close closes the daily log file
// it's safe to call on nil receiver
func (w *WriteDaily) Close() error {
	if w == nil {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.close()
}

// Sync flushes the daily log file to disk
// it's safe to call on nil receiver
func (w *WriteDaily) Sync() error {
	if w == nil {
		return nil
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file != nil {
		return w.file.Sync()
	}
	return nil
}

type Config struct {
	// directory where log files are stored
	// each log type (regular, error, event) has its own subdirectory
	Dir string
	// if true, Verbosef() logs
	Verbose bool
}

// Init initializes the logging system
// log files are stored in config.Dir
// Without Init we only log to Output
func Init(config *Config) {
	dir := config.Dir
	Verbose = config.Verbose
	log = NewWriteDaily(filepath.Join(dir, "log"))
	errorsLog = NewWriteDaily(filepath.Join(dir, "errors"))
	// this doesn't create log files so if app doesn't
	// log events, it's a no-op
	eventsLog = NewWriteDaily(filepath.Join(dir, "events"))
}

// closeWriteDaily closes the WriteDaily and sets its pointer to nil
func closeWriteDaily(wd **WriteDaily) {
	if *wd == nil {
		return
	}
	_ = (*wd).Sync()
	_ = (*wd).Close()
	*wd = nil
}

func Close() {
	closeWriteDaily(&log)
	closeWriteDaily(&errorsLog)
	closeWriteDaily(&eventsLog)
}

func Logf(s string, args ...any) {
	if len(args) > 0 {
		s = fmt.Sprintf(s, args...)
	}
	if Output != nil {
		fmt.Fprint(Output, s)
	}
	_ = log.WriteString(s)
}

func Verbosef(format string, args ...any) {
	if !Verbose {
		return
	}
	Logf(format, args...)
}

func GetCallstackFrames(skip int) []string {
	var callers [32]uintptr
	n := runtime.Callers(skip+1, callers[:])
	frames := runtime.CallersFrames(callers[:n])
	var cs []string
	for {
		frame, more := frames.Next()
		if !more {
			break
		}
		s := frame.File + ":" + strconv.Itoa(frame.Line)
		cs = append(cs, s)
	}
	return cs
}

func GetCallstack(skip int) string {
	frames := GetCallstackFrames(skip + 1)
	return strings.Join(frames, "\n")
}

// Errorf logs an error message along with the callstack
func Errorf(s string, args ...any) {
	if len(args) > 0 {
		s = fmt.Sprintf(s, args...)
	}
	cs := GetCallstack(1)
	s = fmt.Sprintf("%s\n%s\n", s, cs)
	Logf("%s", s)
	_ = errorsLog.WriteString(s)
}

// if err != nil, log and return true
// IfErrf(err) => logs err.Error()
// IfErrf(err, "error is: %v", err) => logs message formatted
func IfErrf(err error, a ...any) bool {
	if err == nil {
		return false
	}
	if len(a) == 0 {
		Errorf("%s", err.Error())
		return true
	}
	s, ok := a[0].(string)
	if !ok {
		// shouldn't happen but just in case
		s = fmt.Sprintf("%s", a[0])
	}
	if len(a) > 1 {
		s = fmt.Sprintf(s, a[1:]...)
	}
	Errorf("%s", s)
	return true
}

// simpleTypeToStr converts simple types to string
// panics if v is of complex type
func simpleTypeToStr(v any) string {
	rt := reflect.TypeOf(v)
	kind := rt.Kind()
	switch kind {
	case reflect.Array, reflect.Slice, reflect.Struct, reflect.Map, reflect.Chan, reflect.Interface, reflect.Pointer:
		panic(fmt.Sprintf("toStr: value is of kind %v", kind))
	case reflect.String:
		return v.(string)
	}
	return fmt.Sprintf("%v", v)
}

// MarshalEvent formats an event as:
// "--- ${name} ${unix_ms}\n${toon}\n"
func MarshalEvent(name string, t time.Time, vals ...any) ([]byte, error) {
	n := len(vals)
	if n%2 != 0 {
		return nil, fmt.Errorf("odd number of values: %d", n)
	}
	var d []byte
	if n > 0 {
		m := map[string]any{}
		for i := 0; i < n; i += 2 {
			k := simpleTypeToStr(vals[i])
			m[k] = vals[i+1]
		}
		var err error
		d, err = toon.Marshal(m)
		if err != nil {
			return nil, err
		}
	}
	res := fmt.Appendf(nil, "--- %s %d\n", name, t.UnixMilli())
	if len(d) > 0 {
		res = append(res, d...)
		if d[len(d)-1] != '\n' {
			res = append(res, '\n')
		}
	}
	return res, nil
}

// Event logs event in toon format to events log
// vals are key / value pairs
func Event(name string, vals ...any) {
	d, err := MarshalEvent(name, time.Now(), vals...)
	if IfErrf(err) {
		return
	}
	_ = eventsLog.Write(d)
}
