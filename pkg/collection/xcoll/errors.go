package xcoll

import (
	"fmt"
	"strings"

	"github.com/omeyang/xbean/pkg/bean/xerrs"
	"github.com/omeyang/xbean/pkg/bean/xpath"
	"github.com/omeyang/xbean/pkg/collection/xpred"
)

// 操作名，出现在错误信息中。
const (
	opSelect         = "select"
	opSelectRejected = "selectRejected"
	opFind           = "find"
	opIndexOf        = "indexOf"
	opGroup          = "group"
	opGroupOne       = "groupOne"
	opGroupCount     = "groupCount"
	opCollect        = "collect"
	opDedupe         = "removeDuplicate"
	opForEach        = "forEach"
	opValueList      = "propertyValueList"
	opValueSet       = "propertyValueSet"
	opValueMap       = "propertyValueMap"
	opSum            = "sum"
	opAvg            = "avg"
	opSort           = "sort"
	opPartition      = "partition"
)

// parsePath 校验并解析路径参数：空白返回 KindInvalidArgument，语法错误返回 KindInvalidPathSyntax。
func (q Query[T]) parsePath(op, path string) (xpath.Path, error) {
	if strings.TrimSpace(path) == "" {
		return xpath.Path{}, xerrs.InvalidArgument(op, "property name is blank")
	}
	p, err := q.Resolver().Parse(path)
	if err != nil {
		return xpath.Path{}, wrapArg(op, err)
	}
	return p, nil
}

// parsePaths 依次校验多个路径参数。
func (q Query[T]) parsePaths(op string, paths []string) ([]xpath.Path, error) {
	out := make([]xpath.Path, 0, len(paths))
	for _, s := range paths {
		p, err := q.parsePath(op, s)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// validate 校验谓词或转换器参数。
func validate(op string, v any) error {
	if v == nil {
		return xerrs.InvalidArgument(op, "predicate or transformer is nil")
	}
	if err := xpred.Validate(v); err != nil {
		return wrapArg(op, err)
	}
	return nil
}

func wrapArg(op string, err error) error {
	return fmt.Errorf("xcoll: %s: %w", op, err)
}

// elemErr 为逐元素失败附加操作名与元素下标。
func elemErr(op string, i int, err error) error {
	return fmt.Errorf("xcoll: %s: element %d: %w", op, i, err)
}
