package models

import (
	"fmt"
	"strings"
)

// NodeType classifies a service inventory record.
type NodeType int

const (
	NodeTypeNormal       NodeType = 0
	NodeTypeDatabase     NodeType = 1
	NodeTypeRPCFramework NodeType = 2
	NodeTypeHttp         NodeType = 3
	NodeTypeMQ           NodeType = 4
	NodeTypeCache        NodeType = 5
	NodeTypeBrowser      NodeType = 6
	NodeTypeUser         NodeType = 10
	NodeTypeUnrecognized NodeType = 11
)

var nodeTypeNames = map[NodeType]string{
	NodeTypeNormal:       "Normal",
	NodeTypeDatabase:     "Database",
	NodeTypeRPCFramework: "RPCFramework",
	NodeTypeHttp:         "Http",
	NodeTypeMQ:           "MQ",
	NodeTypeCache:        "Cache",
	NodeTypeBrowser:      "Browser",
	NodeTypeUser:         "User",
	NodeTypeUnrecognized: "Unrecognized",
}

func (n NodeType) Value() int {
	return int(n)
}

func (n NodeType) String() string {
	if name, ok := nodeTypeNames[n]; ok {
		return name
	}
	return fmt.Sprintf("NodeType(%d)", int(n))
}

// ParseNodeType accepts either the enum name (case insensitive) or its numeric value.
func ParseNodeType(s string) (NodeType, error) {
	for n, name := range nodeTypeNames {
		if strings.EqualFold(name, s) || fmt.Sprint(int(n)) == s {
			return n, nil
		}
	}
	return 0, fmt.Errorf("invalid node type: %s", s)
}

// DetectPoint tells which side of a call observed an endpoint.
type DetectPoint int

const (
	DetectPointServer DetectPoint = 0
	DetectPointClient DetectPoint = 1
	DetectPointProxy  DetectPoint = 2
)

func (d DetectPoint) Value() int {
	return int(d)
}

func (d DetectPoint) String() string {
	switch d {
	case DetectPointServer:
		return "SERVER"
	case DetectPointClient:
		return "CLIENT"
	case DetectPointProxy:
		return "PROXY"
	default:
		return fmt.Sprintf("DetectPoint(%d)", int(d))
	}
}

// Language is the agent language reported in an instance property bag.
type Language string

const (
	LanguageJava    Language = "JAVA"
	LanguageDotNet  Language = "DOTNET"
	LanguageNodeJS  Language = "NODEJS"
	LanguagePython  Language = "PYTHON"
	LanguageRuby    Language = "RUBY"
	LanguageGo      Language = "GO"
	LanguageLua     Language = "LUA"
	LanguagePHP     Language = "PHP"
	LanguageUnknown Language = "UNKNOWN"
)

// ParseLanguage never fails: unknown values map to LanguageUnknown.
func ParseLanguage(s string) Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "java":
		return LanguageJava
	case "dotnet", ".net":
		return LanguageDotNet
	case "nodejs", "node.js":
		return LanguageNodeJS
	case "python":
		return LanguagePython
	case "ruby":
		return LanguageRuby
	case "go", "golang":
		return LanguageGo
	case "lua":
		return LanguageLua
	case "php":
		return LanguagePHP
	default:
		return LanguageUnknown
	}
}

const UnknownDatabaseType = "UNKNOWN"

type Service struct {
	ID   int
	Name string
}

type Database struct {
	ID   int
	Name string
	Type string
}

type Endpoint struct {
	ID   string
	Name string
}

// Attribute is a single generic key/value pair of a service instance.
// The same key may appear more than once (one entry per IPv4 address).
type Attribute struct {
	Name  string
	Value string
}

type ServiceInstance struct {
	ID           string
	Name         string
	InstanceUUID string
	Language     Language
	Attributes   []Attribute
}

// GlobalBrief summarises the inventory for a dashboard header.
type GlobalBrief struct {
	NumOfService  int
	NumOfEndpoint int
	NumOfDatabase int
	NumOfCache    int
	NumOfMQ       int
}
