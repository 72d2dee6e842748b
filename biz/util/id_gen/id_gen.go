package id_gen

import (
	"os"
	"strconv"
	"strings"
	"time"

	"bankdemo/biz/util/ip"

	"github.com/bytedance/gopkg/lang/fastrand"
)

func init() {
	idgen = NewIDGenerator(10)
}

// NewID returns a log id: millis, host ip, pid and a random suffix.
func NewID() string {
	return idgen.NewID()
}

var idgen *IDGenerator

type IDGenerator struct {
	pool <-chan string
	stop chan any
}

func NewIDGenerator(maxSize int) *IDGenerator {
	stop := make(chan any)
	idgen := &IDGenerator{
		pool: newPool(maxSize, stop),
		stop: stop,
	}

	return idgen
}

func (idgen *IDGenerator) Stop() {
	select {
	case <-idgen.stop:
	default:
		close(idgen.stop)
	}
}

func (idgen *IDGenerator) NewID() string {
	return <-idgen.pool
}

func newPool(size int, stop chan any) <-chan string {
	pool := make(chan string, size)
	suffix := ip.IPv4Hex() + strconv.Itoa(os.Getpid())

	go func() {
		for {
			select {
			case <-stop:
				return
			case pool <- nextID(suffix):
			}
		}
	}()

	return pool
}

func nextID(hostPart string) string {
	sb := strings.Builder{}
	sb.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 36))
	sb.WriteString(hostPart)
	sb.WriteString(strconv.FormatUint(fastrand.Uint64(), 36))
	return sb.String()
}
