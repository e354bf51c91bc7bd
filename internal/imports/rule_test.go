package imports

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

var defaultResources = []string{"hooks", "context", "components", "services", "utils"}

func TestResourceRule_Extract(t *testing.T) {
	content := `'use client';
import React, { useState } from 'react';
import { useSchoolDatabase } from "../../hooks/useSchoolDatabase";
import './styles.css';
import {
  Box,
  Typography,
} from '@mui/material';
import SidebarMenu from '../../components/SidebarMenu'
  import Indented from '../x';
// import Commented from '../y';
const lazy = () => import('../z');
`
	got := NewResourceRule([]string{"*.js*"}, defaultResources).Extract(content)
	want := []Import{
		{Statement: "import React, { useState } from 'react';", Path: "react"},
		{Statement: `import { useSchoolDatabase } from "../../hooks/useSchoolDatabase";`, Path: "../../hooks/useSchoolDatabase"},
		{Statement: "import {\n  Box,\n  Typography,\n} from '@mui/material';", Path: "@mui/material"},
		{Statement: "import SidebarMenu from '../../components/SidebarMenu'", Path: "../../components/SidebarMenu"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}
}

func TestResourceRule_Check(t *testing.T) {
	rule := NewResourceRule([]string{"*.js*"}, defaultResources)
	tests := []struct {
		name  string
		path  string
		depth int
		want  Verdict
	}{
		{"correct hooks", "../../hooks/useAuthUser", 2, Verdict{Category: "hooks", ActualDepth: 2}},
		{"too deep", "../../hooks/useSchoolDatabase", 1, Verdict{Mismatch: true, Category: "hooks", ExpectedPath: "../hooks/useSchoolDatabase", ActualDepth: 2}},
		{"too shallow", "../services/financeiroService", 3, Verdict{Mismatch: true, Category: "services", ExpectedPath: "../../../services/financeiroService", ActualDepth: 1}},
		{"ends with resource", "../../../context", 2, Verdict{Mismatch: true, Category: "context", ExpectedPath: "../../context", ActualDepth: 3}},
		{"same directory is out of scope", "./hooks/useLocal", 2, Verdict{}},
		{"no resource", "../../config/constants", 1, Verdict{}},
		{"later resource decides", "../../components/hooks/useX", 3, Verdict{Mismatch: true, Category: "components", ExpectedPath: "../../../components/hooks/useX", ActualDepth: 2}},
		{"only leading run replaced", "../utils/../utils/format", 2, Verdict{Mismatch: true, Category: "utils", ExpectedPath: "../../utils/../utils/format", ActualDepth: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rule.Check(Import{Path: tt.path}, tt.depth)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSymbolRule(t *testing.T) {
	rule := NewSymbolRule([]string{"*.jsx"}, "useSchoolDatabase", "hooks")
	assert.Equal(t, "useSchoolDatabase", rule.Name())

	content := `import React from 'react';
import { useSchoolDatabase } from '../../hooks/useSchoolDatabase';
import { useSchoolDatabase as db2 } from '../hooks/useSchoolDatabase';
`
	got := rule.Extract(content)
	assert.Equal(t, []Import{{
		Statement: "import { useSchoolDatabase } from '../../hooks/useSchoolDatabase';",
		Path:      "../../hooks/useSchoolDatabase",
	}}, got)

	assert.Nil(t, rule.Extract("import { useSchoolDatabaseV2 } from '../hooks/x';\n"))
	assert.Nil(t, rule.Extract("import React from 'react';\n"))

	multi := rule.Extract("import {\n  useAuthUser,\n  useSchoolDatabase,\n} from '../hooks/useSchoolDatabase';\n")
	assert.Len(t, multi, 1)

	assert.Equal(t, Verdict{Category: "useSchoolDatabase", ExpectedPath: "../../hooks/useSchoolDatabase", ActualDepth: 2},
		rule.Check(Import{Path: "../../hooks/useSchoolDatabase"}, 2))
	assert.Equal(t, Verdict{Mismatch: true, Category: "useSchoolDatabase", ExpectedPath: "../hooks/useSchoolDatabase", ActualDepth: 2},
		rule.Check(Import{Path: "../../hooks/useSchoolDatabase"}, 1))
	// A different relative target is a mismatch even at the right depth.
	assert.True(t, rule.Check(Import{Path: "../hooks/index"}, 1).Mismatch)
}

func TestImport_IsRelative(t *testing.T) {
	assert.True(t, Import{Path: "./x"}.IsRelative())
	assert.True(t, Import{Path: "../x"}.IsRelative())
	assert.False(t, Import{Path: "react"}.IsRelative())
	assert.False(t, Import{Path: "@/hooks/useSchoolDatabase"}.IsRelative())
}
