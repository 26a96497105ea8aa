package output

import (
	"cmp"
	"path"
	"slices"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is where file descriptions start.
	descriptionColumn = 36
)

// TreeNode is a single entry of a rendered file tree.
type TreeNode struct {
	Name        string
	Description string
	IsDir       bool
	Children    []*TreeNode
}

// child returns the child named name, creating it when missing.
func (n *TreeNode) child(name string, isDir bool) *TreeNode {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	c := &TreeNode{Name: name, IsDir: isDir}
	n.Children = append(n.Children, c)
	return c
}

// RenderFileTree renders slash-separated relative file paths as a tree rooted
// at rootName. Values in files are optional descriptions rendered muted and
// aligned.
func RenderFileTree(rootName string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	root := &TreeNode{Name: rootName, IsDir: true}
	for p, desc := range files {
		parts := strings.Split(path.Clean(p), "/")
		current := root
		for i, part := range parts {
			last := i == len(parts)-1
			current = current.child(part, !last)
			if last {
				current.Description = desc
			}
		}
	}

	sortTree(root)

	var sb strings.Builder
	styles := GetStyles()
	sb.WriteString(styles.Bold.Render(root.Name + "/"))
	sb.WriteString("\n")
	for i, c := range root.Children {
		renderNode(&sb, styles, c, "", i == len(root.Children)-1)
	}
	return sb.String()
}

// sortTree orders directories before files, then by name.
func sortTree(node *TreeNode) {
	slices.SortFunc(node.Children, func(a, b *TreeNode) int {
		if a.IsDir != b.IsDir {
			if a.IsDir {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Name, b.Name)
	})
	for _, c := range node.Children {
		sortTree(c)
	}
}

func renderNode(sb *strings.Builder, styles *Styles, node *TreeNode, prefix string, isLast bool) {
	connector := treeEdge
	childPrefix := prefix + treeVert
	if isLast {
		connector = treeLast
		childPrefix = prefix + treeSpace
	}

	name := node.Name
	if node.IsDir {
		name += "/"
	}
	line := prefix + connector + name

	if node.Description != "" {
		// Box-drawing runes are multi-byte; pad on rune count.
		padding := descriptionColumn - len([]rune(line))
		if padding < 2 {
			padding = 2
		}
		line += strings.Repeat(" ", padding) + styles.Muted.Render(node.Description)
	}

	sb.WriteString(line)
	sb.WriteString("\n")

	for i, c := range node.Children {
		renderNode(sb, styles, c, childPrefix, i == len(node.Children)-1)
	}
}
