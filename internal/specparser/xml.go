// File: internal/specparser/xml.go
package specparser

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"go.uber.org/multierr"

	"github.com/xkilldash9x/gridspec/internal/responsive"
)

// groupTag wraps the entries of one aspect-ratio bucket.
const groupTag = "specs"

// slotTags maps a slot element to the slot it configures.
var slotTags = map[string]responsive.Slot{
	"startPadding": responsive.StartPaddingSlot,
	"endPadding":   responsive.EndPaddingSlot,
	"gutter":       responsive.GutterSlot,
	"cellSize":     responsive.CellSizeSlot,
}

// parseXML reads documents shaped like
//
//	<allAppsSpecs xmlns:launcher="...">
//	  <specs launcher:maxAspectRatio="1.5">
//	    <allAppsSpec launcher:specType="width" launcher:maxAvailableSize="600dp">
//	      <startPadding launcher:fixedSize="16dp" />
//	      ...
//	    </allAppsSpec>
//	  </specs>
//	</allAppsSpecs>
//
// Entries placed directly under the root form a single open-ended group. Attribute
// namespace prefixes are ignored.
func (p *Parser) parseXML(data []byte, specTag string) ([]responsive.Group, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: document has no root element", ErrMalformedDocument)
	}

	var (
		groups []responsive.Group
		loose  []responsive.Entry
		errs   error
	)
	for _, child := range root.ChildElements() {
		switch child.Tag {
		case groupTag:
			g, err := p.xmlGroup(child, specTag)
			errs = multierr.Append(errs, err)
			groups = append(groups, g)
		case specTag:
			e, err := p.xmlEntry(child)
			errs = multierr.Append(errs, err)
			loose = append(loose, e)
		default:
			errs = multierr.Append(errs, fmt.Errorf("%s: unexpected element <%s>", child.GetPath(), child.Tag))
		}
	}
	if len(loose) > 0 {
		groups = append(groups, responsive.Group{MaxAspectRatio: OpenAspectRatio, Entries: loose})
	}
	if errs != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, errs)
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: no <%s> elements under <%s>", ErrMalformedDocument, specTag, root.Tag)
	}
	return groups, nil
}

func (p *Parser) xmlGroup(el *etree.Element, specTag string) (responsive.Group, error) {
	g := responsive.Group{MaxAspectRatio: OpenAspectRatio}
	var errs error
	if raw := attr(el, "maxAspectRatio"); raw != nil {
		ratio, err := strconv.ParseFloat(*raw, 64)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: invalid maxAspectRatio %q", el.GetPath(), *raw))
		} else {
			g.MaxAspectRatio = ratio
		}
	}
	for _, child := range el.ChildElements() {
		if child.Tag != specTag {
			errs = multierr.Append(errs, fmt.Errorf("%s: unexpected element <%s>", child.GetPath(), child.Tag))
			continue
		}
		e, err := p.xmlEntry(child)
		errs = multierr.Append(errs, err)
		g.Entries = append(g.Entries, e)
	}
	return g, errs
}

// xmlEntry reads one breakpoint. specType defaults to height and maxAvailableSize to 0, the
// same defaults the launcher's resource attributes carry.
func (p *Parser) xmlEntry(el *etree.Element) (responsive.Entry, error) {
	e := responsive.Entry{Axis: responsive.Height, Sizes: make(map[responsive.Slot]responsive.RawSize, len(slotTags))}
	path := el.GetPath()
	var errs error

	if raw := attr(el, "specType"); raw != nil {
		axis, err := responsive.ParseAxis(*raw)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
		}
		e.Axis = axis
	}
	if raw := attr(el, "maxAvailableSize"); raw != nil {
		v, err := p.pixels(*raw)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: maxAvailableSize: %w", path, err))
		}
		e.MaxAvailableSize = v
	}

	for _, child := range el.ChildElements() {
		slot, ok := slotTags[child.Tag]
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("%s: unexpected element <%s>", child.GetPath(), child.Tag))
			continue
		}
		if _, dup := e.Sizes[slot]; dup {
			errs = multierr.Append(errs, fmt.Errorf("%s: %s declared twice", path, slot))
			continue
		}
		size, err := p.rawSize(
			attr(child, "fixedSize"),
			attr(child, "ofAvailableSpace"),
			attr(child, "ofRemainderSpace"),
			attr(child, "maxSize"),
		)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", child.GetPath(), err))
			continue
		}
		e.Sizes[slot] = size
	}
	return e, errs
}

// attr returns the value of the attribute named key in any namespace, or nil.
func attr(el *etree.Element, key string) *string {
	for i := range el.Attr {
		if el.Attr[i].Key == key {
			return &el.Attr[i].Value
		}
	}
	return nil
}
