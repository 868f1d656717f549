package fixgen

import "text/template"

func mustTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Parse(text))
}

// Primary strategy per issue type, with alternatives left as commented-out
// guidance inside the snippet.

var missingCSV = mustTemplate("missing_csv", `import pandas as pd

df = pd.read_csv("{{.Input}}")

missing = df["{{.Column}}"].isna().sum()

# Primary strategy: fill the gaps with the column median
median = df["{{.Column}}"].median()
df["{{.Column}}"] = df["{{.Column}}"].fillna(median)

# Alternatives:
# df["{{.Column}}"] = df["{{.Column}}"].fillna(df["{{.Column}}"].mode()[0])  # mode fill
# df["{{.Column}}"] = df["{{.Column}}"].ffill()                              # forward fill

df.to_csv("{{.Output}}", index=False)
print(f"Filled {missing} missing values in '{{.Column}}'")
`)

var missingSQL = mustTemplate("missing_sql", `-- Fill null cells with the column average computed from non-null rows
UPDATE {{.Table}}
SET {{.Column}} = (
    SELECT AVG({{.Column}})
    FROM {{.Table}}
    WHERE {{.Column}} IS NOT NULL
)
WHERE {{.Column}} IS NULL;
`)

var duplicatesCSV = mustTemplate("duplicates_csv", `import pandas as pd

df = pd.read_csv("{{.Input}}")

before = len(df)
# Drop rows repeating the value of '{{.Column}}', keeping the first occurrence
df = df.drop_duplicates(subset=["{{.Column}}"], keep="first")

df.to_csv("{{.Output}}", index=False)
print(f"Removed {before - len(df)} duplicate rows based on '{{.Column}}'")
`)

var duplicatesSQL = mustTemplate("duplicates_sql", `-- Rank rows per {{.Column}} value and delete everything past rank 1
DELETE FROM {{.Table}}
WHERE id IN (
    SELECT id FROM (
        SELECT id,
               ROW_NUMBER() OVER (PARTITION BY {{.Column}} ORDER BY id) AS rn
        FROM {{.Table}}
    ) ranked
    WHERE rn > 1
);
`)

var outliersCSV = mustTemplate("outliers_csv", `import pandas as pd

df = pd.read_csv("{{.Input}}")

# IQR fences: Q1 - 1.5*IQR, Q3 + 1.5*IQR
q1 = df["{{.Column}}"].quantile(0.25)
q3 = df["{{.Column}}"].quantile(0.75)
iqr = q3 - q1
lower = q1 - 1.5 * iqr
upper = q3 + 1.5 * iqr

outliers = ((df["{{.Column}}"] < lower) | (df["{{.Column}}"] > upper)).sum()

# Primary strategy: clip values into the interquartile bounds
df["{{.Column}}"] = df["{{.Column}}"].clip(lower=lower, upper=upper)

# Alternative: remove the outlier rows instead of clipping
# df = df[(df["{{.Column}}"] >= lower) & (df["{{.Column}}"] <= upper)]

df.to_csv("{{.Output}}", index=False)
print(f"Clipped {outliers} outliers in '{{.Column}}'")
`)

var genericCSV = mustTemplate("generic_csv", `import pandas as pd

df = pd.read_csv("{{.Input}}")

# Inspect the distribution of '{{.Column}}' before deciding on a fix
print(df["{{.Column}}"].describe())
print(df["{{.Column}}"].value_counts().head(10))

# Possible normalization steps:
# df["{{.Column}}"] = df["{{.Column}}"].str.strip()  # trim whitespace
# df["{{.Column}}"] = df["{{.Column}}"].str.lower()  # fold case
`)
