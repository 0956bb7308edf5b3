package upstream

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"strings"
)

// shape names the response layouts seen from the search command. The same
// nominal API returns differently nested documents depending on the
// endpoint flavour, so the parser detects the layout first and decodes
// second.
type shape int

const (
	shapeUnknown shape = iota
	shapeJSONList
	shapeJSONNested
	shapeXMLFlat
	shapeXMLPerDomain
)

func (s shape) String() string {
	switch s {
	case shapeJSONList:
		return "json_list"
	case shapeJSONNested:
		return "json_nested"
	case shapeXMLFlat:
		return "xml_flat"
	case shapeXMLPerDomain:
		return "xml_per_domain"
	default:
		return "unknown"
	}
}

type record struct {
	Domain    string
	Available string
	Price     string
	Error     string
}

type searchReply struct {
	Shape   shape
	Records []record
	Code    string
	Message string
}

// failed reports an error payload: a response code other than zero.
func (r searchReply) failed() bool {
	return r.Code != "" && r.Code != "0"
}

func parseSearchReply(body []byte) searchReply {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return searchReply{}
	}
	switch trimmed[0] {
	case '{':
		return parseJSON(trimmed)
	case '<':
		return parseXML(trimmed)
	default:
		return searchReply{}
	}
}

// flexString accepts strings, numbers and booleans.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(b)
	return nil
}

type jsonEnvelope struct {
	SearchResponse *jsonSearch `json:"SearchResponse"`
	Response       *jsonSearch `json:"Response"`
}

type jsonSearch struct {
	ResponseCode  flexString      `json:"ResponseCode"`
	Error         flexString      `json:"Error"`
	SearchResults json.RawMessage `json:"SearchResults"`
}

type jsonRecord struct {
	DomainName flexString `json:"DomainName"`
	Domain     flexString `json:"Domain"`
	Available  flexString `json:"Available"`
	Price      flexString `json:"Price"`
	Error      flexString `json:"Error"`
}

func (r jsonRecord) record() record {
	name := string(r.DomainName)
	if name == "" {
		name = string(r.Domain)
	}
	return record{
		Domain:    name,
		Available: string(r.Available),
		Price:     string(r.Price),
		Error:     string(r.Error),
	}
}

func parseJSON(body []byte) searchReply {
	var env jsonEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return searchReply{}
	}

	search := env.SearchResponse
	if search == nil {
		search = env.Response
	}
	if search == nil {
		return searchReply{}
	}

	reply := searchReply{
		Shape:   shapeJSONList,
		Code:    strings.TrimSpace(string(search.ResponseCode)),
		Message: string(search.Error),
	}

	raw := bytes.TrimSpace(search.SearchResults)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return reply
	}

	switch raw[0] {
	case '[':
		var list []jsonRecord
		if err := json.Unmarshal(raw, &list); err != nil {
			return searchReply{}
		}
		reply.Records = toRecords(list)
	case '{':
		reply.Shape = shapeJSONNested
		var wrapper struct {
			SearchResult json.RawMessage `json:"SearchResult"`
		}
		if err := json.Unmarshal(raw, &wrapper); err != nil {
			return searchReply{}
		}
		inner := bytes.TrimSpace(wrapper.SearchResult)
		if len(inner) == 0 {
			inner = raw
		}
		list, ok := decodeOneOrMany(inner)
		if !ok {
			return searchReply{}
		}
		reply.Records = toRecords(list)
	default:
		return searchReply{}
	}
	return reply
}

func decodeOneOrMany(raw []byte) ([]jsonRecord, bool) {
	if raw[0] == '[' {
		var list []jsonRecord
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, false
		}
		return list, true
	}
	var one jsonRecord
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil, false
	}
	return []jsonRecord{one}, true
}

func toRecords(list []jsonRecord) []record {
	out := make([]record, 0, len(list))
	for _, r := range list {
		out = append(out, r.record())
	}
	return out
}

type xmlDocument struct {
	XMLName   xml.Name
	Header    xmlHeader     `xml:"ResponseHeader"`
	Results   []xmlRecord   `xml:"SearchResults>SearchResult"`
	Headers   []xmlRecord   `xml:"SearchHeader"`
	Responses []xmlDocument `xml:"SearchResponse"`
}

type xmlHeader struct {
	SuccessCode  string `xml:"SuccessCode"`
	ResponseCode string `xml:"ResponseCode"`
	Error        string `xml:"Error"`
}

func (h xmlHeader) code() string {
	if c := strings.TrimSpace(h.SuccessCode); c != "" {
		return c
	}
	return strings.TrimSpace(h.ResponseCode)
}

type xmlRecord struct {
	SuccessCode string `xml:"SuccessCode"`
	DomainName  string `xml:"DomainName"`
	Available   string `xml:"Available"`
	Price       string `xml:"Price"`
	Error       string `xml:"Error"`
}

func (r xmlRecord) record() record {
	rec := record{
		Domain:    strings.TrimSpace(r.DomainName),
		Available: strings.TrimSpace(r.Available),
		Price:     strings.TrimSpace(r.Price),
		Error:     strings.TrimSpace(r.Error),
	}
	if code := strings.TrimSpace(r.SuccessCode); code != "" && code != "0" && rec.Error == "" {
		rec.Error = "upstream result code " + code
	}
	return rec
}

func parseXML(body []byte) searchReply {
	var doc xmlDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return searchReply{}
	}

	switch doc.XMLName.Local {
	case "SearchResponse":
		if len(doc.Headers) > 0 {
			return searchReply{Shape: shapeXMLPerDomain, Records: xmlRecords(doc.Headers)}
		}
		return searchReply{
			Shape:   shapeXMLFlat,
			Records: xmlRecords(doc.Results),
			Code:    doc.Header.code(),
			Message: strings.TrimSpace(doc.Header.Error),
		}
	case "Results":
		reply := searchReply{Shape: shapeXMLPerDomain}
		for _, resp := range doc.Responses {
			reply.Records = append(reply.Records, xmlRecords(resp.Headers)...)
			reply.Records = append(reply.Records, xmlRecords(resp.Results)...)
		}
		if len(reply.Records) == 0 {
			reply.Code = doc.Header.code()
			reply.Message = strings.TrimSpace(doc.Header.Error)
		}
		return reply
	default:
		return searchReply{}
	}
}

func xmlRecords(list []xmlRecord) []record {
	out := make([]record, 0, len(list))
	for _, r := range list {
		out = append(out, r.record())
	}
	return out
}

// isAvailable normalizes the upstream flag: "yes", "Yes", "y" and JSON true
// mean available.
func isAvailable(flag string) bool {
	v := strings.ToLower(strings.TrimSpace(flag))
	return strings.HasPrefix(v, "y") || v == "true"
}
